package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFromBuildInfo(t *testing.T) {
	tests := []struct {
		name string
		in   Info
		bi   *debug.BuildInfo
		want Info
	}{
		{
			name: "go install build",
			in:   Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"},
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.4.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				},
			},
			want: Info{Version: "1.4.0", Commit: "0123456789abcdef", BuildDate: "2026-01-02T03:04:05Z"},
		},
		{
			name: "ldflags win",
			in:   Info{Version: "2.0.0", Commit: "feedbee", BuildDate: "today"},
			bi: &debug.BuildInfo{
				Main:     debug.Module{Version: "v1.4.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456"}},
			},
			want: Info{Version: "2.0.0", Commit: "feedbee", BuildDate: "today"},
		},
		{
			name: "local checkout",
			in:   Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"},
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			fillFromBuildInfo(&got, tt.bi)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo_Full(t *testing.T) {
	i := Info{
		Version:   "1.0.0",
		Commit:    "0123456789abcdef",
		BuildDate: "2026-01-02",
		GoVersion: "go1.25.5",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "1.0.0", i.String())
	assert.Equal(t, "0123456", i.ShortCommit())
	assert.Equal(t, "1.0.0 (0123456) built 2026-01-02 go1.25.5 linux/amd64", i.Full())
}
