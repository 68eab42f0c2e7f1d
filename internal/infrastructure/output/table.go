package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/reglet-dev/launchkit/internal/application/dto"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// TableFormatter formats registry listings as aligned columns.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter with color disabled.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// FormatCategories writes one row per category.
//
//nolint:errcheck // tabwriter buffers; write errors surface from Flush
func (f *TableFormatter) FormatCategories(categories []dto.CategoryInfo) error {
	if len(categories) == 0 {
		_, err := fmt.Fprintln(f.writer, "No categories match.")
		return err
	}

	w := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, f.colorize("NAME\tID\tTIER", colorBold))
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, f.colorize(c.ID, colorGray), c.TierName)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(f.writer, "\n%d categories\n", len(categories))
	return err
}

// FormatEnvironments writes one desktop environment per line.
func (f *TableFormatter) FormatEnvironments(environments []dto.EnvironmentInfo) error {
	if _, err := fmt.Fprintln(f.writer, f.colorize("NAME", colorBold)); err != nil {
		return err
	}
	for _, e := range environments {
		if _, err := fmt.Fprintln(f.writer, e.Name); err != nil {
			return err
		}
	}
	return nil
}
