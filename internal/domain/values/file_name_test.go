package values

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single letter", "a", false},
		{"letters", "myapp", false},
		{"letters and digits", "app2go", false},
		{"empty", "", true},
		{"leading digit", "2app", true},
		{"uppercase", "MyApp", true},
		{"dash", "my-app", true},
		{"dot", "my.app", true},
		{"space", "my app", true},
		{"trailing newline", "myapp\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := NewFileName(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				assert.True(t, fn.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, fn.String())
		})
	}
}

func Test_FileName_DesktopFile(t *testing.T) {
	assert.Equal(t, "myapp.desktop", MustNewFileName("myapp").DesktopFile())
}

func Test_MustNewFileName_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewFileName("Bad Name")
	})
}

func Test_FileName_Equals(t *testing.T) {
	assert.True(t, MustNewFileName("abc").Equals(MustNewFileName("abc")))
	assert.False(t, MustNewFileName("abc").Equals(MustNewFileName("abd")))
}
