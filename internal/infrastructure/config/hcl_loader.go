package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/reglet-dev/launchkit/internal/application/dto"
)

// HCLManifestLoader loads manifests written in HCL:
//
//	file_name  = "myapp"
//	type       = "Application"
//	name       = "My App"
//	exec       = "${home}/bin/myapp %F"
//	categories = ["Utility"]
//
//	localized {
//	  name = { de = "Meine App" }
//	}
//
// Expressions may reference home (the user's home directory) and
// env.NAME (environment variables).
type HCLManifestLoader struct {
	environ func() []string
	homeDir func() (string, error)
}

// NewHCLManifestLoader creates a new HCL manifest loader.
func NewHCLManifestLoader() *HCLManifestLoader {
	return &HCLManifestLoader{
		environ: os.Environ,
		homeDir: os.UserHomeDir,
	}
}

// LoadManifest reads and decodes the manifest at path.
func (l *HCLManifestLoader) LoadManifest(path string) (*dto.Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return l.Decode(data, path)
}

// Decode parses HCL source. filename is only used in diagnostics.
func (l *HCLManifestLoader) Decode(src []byte, filename string) (*dto.Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest HCL: %w", diags)
	}

	var manifest dto.Manifest
	if diags := gohcl.DecodeBody(file.Body, l.evalContext(), &manifest); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest HCL: %w", diags)
	}
	return &manifest, nil
}

func (l *HCLManifestLoader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)

	env := make(map[string]cty.Value)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok && name != "" {
			env[name] = cty.StringVal(value)
		}
	}
	if len(env) == 0 {
		vars["env"] = cty.MapValEmpty(cty.String)
	} else {
		vars["env"] = cty.MapVal(env)
	}

	if home, err := l.homeDir(); err == nil {
		vars["home"] = cty.StringVal(home)
	}

	return &hcl.EvalContext{Variables: vars}
}
