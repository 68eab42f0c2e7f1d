package output

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultStyleName = "catppuccin-mocha"

// Highlighter colorizes rendered launcher files for terminal preview.
// Launcher files are INI-shaped, so the INI lexer is used.
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter creates a highlighter for the named chroma style.
// An empty or unknown name falls back to the default style.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = defaultStyleName
	}

	lexer := lexers.Get("ini")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(styleName),
		formatter: formatter,
	}
}

// Highlight writes text to w with ANSI color escapes.
func (h *Highlighter) Highlight(w io.Writer, text string) error {
	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return fmt.Errorf("failed to tokenise: %w", err)
	}
	if err := h.formatter.Format(w, h.style, iterator); err != nil {
		return fmt.Errorf("failed to format: %w", err)
	}
	return nil
}
