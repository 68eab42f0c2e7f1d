package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/launchkit/internal/application/dto"
)

// YAMLFormatter formats registry listings as YAML sequences.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatCategories writes categories as a YAML sequence.
func (f *YAMLFormatter) FormatCategories(categories []dto.CategoryInfo) error {
	return f.write(nonNil(categories))
}

// FormatEnvironments writes environments as a YAML sequence.
func (f *YAMLFormatter) FormatEnvironments(environments []dto.EnvironmentInfo) error {
	return f.write(nonNil(environments))
}

func (f *YAMLFormatter) write(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
