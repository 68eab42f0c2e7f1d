package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseDesktopEnvironment(t *testing.T) {
	tests := []struct {
		input   string
		want    DesktopEnvironment
		wantErr bool
	}{
		{"GNOME", DesktopGNOME, false},
		{"gnome-classic", DesktopGNOMEClassic, false},
		{"GNOME_FLASHBACK", DesktopGNOMEFlashback, false},
		{"lxqt", DesktopLXQt, false},
		{"Cinnamon", DesktopCinnamon, false},
		{"Windows", DesktopUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDesktopEnvironment(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_AllDesktopEnvironments(t *testing.T) {
	all := AllDesktopEnvironments()

	assert.Len(t, all, 20)
	for _, env := range all {
		assert.True(t, env.IsValid())
		assert.NotEmpty(t, env.String())
	}
	assert.False(t, DesktopUnknown.IsValid())
}
