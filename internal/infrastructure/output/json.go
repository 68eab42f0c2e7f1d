package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/launchkit/internal/application/dto"
)

// JSONFormatter formats registry listings as JSON arrays.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// FormatCategories writes categories as a JSON array.
func (f *JSONFormatter) FormatCategories(categories []dto.CategoryInfo) error {
	return f.write(nonNil(categories))
}

// FormatEnvironments writes environments as a JSON array.
func (f *JSONFormatter) FormatEnvironments(environments []dto.EnvironmentInfo) error {
	return f.write(nonNil(environments))
}

func (f *JSONFormatter) write(v any) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// nonNil makes empty listings encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
