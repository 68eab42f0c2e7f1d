package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reglet-dev/launchkit/internal/application/dto"
	"github.com/reglet-dev/launchkit/internal/application/ports"
)

var (
	_ ports.ManifestLoader = (*ManifestLoader)(nil)
	_ ports.ManifestLoader = (*YAMLManifestLoader)(nil)
	_ ports.ManifestLoader = (*HCLManifestLoader)(nil)
)

// ManifestLoader picks a format loader by file extension.
type ManifestLoader struct {
	yaml *YAMLManifestLoader
	hcl  *HCLManifestLoader
}

// NewManifestLoader creates a loader for .yaml, .yml and .hcl manifests.
func NewManifestLoader() *ManifestLoader {
	return &ManifestLoader{
		yaml: NewYAMLManifestLoader(),
		hcl:  NewHCLManifestLoader(),
	}
}

// LoadManifest implements ports.ManifestLoader.
func (l *ManifestLoader) LoadManifest(path string) (*dto.Manifest, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return l.yaml.LoadManifest(path)
	case ".hcl":
		return l.hcl.LoadManifest(path)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (want .yaml, .yml or .hcl)", ext)
	}
}
