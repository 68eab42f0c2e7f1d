// Package config loads launcher manifests from YAML and HCL files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/launchkit/internal/application/dto"
)

// YAMLManifestLoader loads manifests from YAML files.
type YAMLManifestLoader struct{}

// NewYAMLManifestLoader creates a new YAML manifest loader.
func NewYAMLManifestLoader() *YAMLManifestLoader {
	return &YAMLManifestLoader{}
}

// LoadManifest reads and decodes the manifest at path.
func (l *YAMLManifestLoader) LoadManifest(path string) (*dto.Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return l.Decode(bytes.NewReader(data))
}

// Decode validates a YAML document against the manifest schema and decodes it.
func (l *YAMLManifestLoader) Decode(r io.Reader) (*dto.Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("manifest validation failed: document is empty")
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode manifest YAML: %w", err)
	}

	// The schema validator expects numbers as json.Number.
	var doc any
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode manifest YAML: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var manifest dto.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest YAML: %w", err)
	}
	return &manifest, nil
}

// readFile reads a file through os.OpenRoot so the base name cannot
// escape its directory.
func readFile(path string) ([]byte, error) {
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return data, nil
}
