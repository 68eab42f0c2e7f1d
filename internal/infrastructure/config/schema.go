package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/manifest.schema.json
var manifestSchemaJSON []byte

const manifestSchemaURL = "manifest.schema.json"

var (
	manifestSchemaOnce sync.Once
	manifestSchema     *jsonschema.Schema
	errManifestSchema  error
)

// ManifestSchema returns the JSON Schema manifests are checked against.
func ManifestSchema() []byte {
	return bytes.Clone(manifestSchemaJSON)
}

func compiledManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource(manifestSchemaURL, bytes.NewReader(manifestSchemaJSON)); err != nil {
			errManifestSchema = fmt.Errorf("failed to add manifest schema: %w", err)
			return
		}
		manifestSchema, errManifestSchema = compiler.Compile(manifestSchemaURL)
	})
	return manifestSchema, errManifestSchema
}

// validateDocument checks a decoded JSON document against the manifest schema.
func validateDocument(doc any) error {
	schema, err := compiledManifestSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	return nil
}

// formatSchemaValidationError flattens the error tree into one line per leaf.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("manifest validation failed")
	}
	return fmt.Errorf("manifest validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
