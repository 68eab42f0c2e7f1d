package entities

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/reglet-dev/launchkit/internal/domain/values"
)

const (
	// Header is the group header every launcher file starts with.
	Header = "[Desktop Entry]"

	// LineSeparator ends every rendered line, independent of the host OS.
	LineSeparator = "\n"
)

// Render serializes the entry into the desktop entry key/value format.
//
// Keys are emitted in a fixed order. Multi-valued keys keep insertion order
// and localized keys are sorted by language tag, so rendering the same entry
// always yields the same text. Values are written verbatim: no escaping of
// '=', ';' or line breaks is performed.
func (e *DesktopEntry) Render() string {
	var sb strings.Builder
	w := lineWriter{sb: &sb}

	w.line(Header)
	w.pair("Type", e.kind.String())

	w.pair("Name", e.name)
	w.localized("Name", e.nameLang)

	w.pair("Exec", e.exec)
	w.optional("Icon", e.icon)

	w.optional("Comment", e.comment)
	w.localized("Comment", e.commentLang)

	w.list("Categories", stringsOf(e.categories))
	w.optional("Path", e.path)
	w.list("Keywords", e.keywords)
	w.optional("TryExec", e.tryExec)
	w.pair("Terminal", strconv.FormatBool(e.terminal))

	w.optional("GenericName", e.genericName)
	if len(e.genericNameLang) > 0 {
		w.localized("GenericName", e.genericNameLang)
		// A blank line closes the localized generic names.
		w.line("")
	}

	w.pair("NoDisplay", strconv.FormatBool(e.noDisplay))
	w.list("OnlyShowIn", stringsOf(e.onlyShowIn))
	w.list("NotShowIn", stringsOf(e.notShowIn))
	w.list("MimeType", stringsOf(e.mimeTypes))
	w.pair("StartupNotify", strconv.FormatBool(e.startupNotify))
	w.optional("StartupWMClass", e.startupWMClass)

	return sb.String()
}

// WriteTo writes the rendered entry to w.
func (e *DesktopEntry) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Render())
	return int64(n), err
}

type lineWriter struct {
	sb *strings.Builder
}

func (w lineWriter) line(s string) {
	w.sb.WriteString(s)
	w.sb.WriteString(LineSeparator)
}

func (w lineWriter) pair(key, value string) {
	w.sb.WriteString(key)
	w.sb.WriteByte('=')
	w.line(value)
}

func (w lineWriter) optional(key, value string) {
	if value != "" {
		w.pair(key, value)
	}
}

// list writes "Key=a;b;" with a trailing semicolon after the last item.
func (w lineWriter) list(key string, items []string) {
	if len(items) == 0 {
		return
	}
	w.sb.WriteString(key)
	w.sb.WriteByte('=')
	for _, item := range items {
		w.sb.WriteString(item)
		w.sb.WriteByte(';')
	}
	w.sb.WriteString(LineSeparator)
}

func (w lineWriter) localized(key string, variants map[values.LanguageTag]string) {
	tags := make([]values.LanguageTag, 0, len(variants))
	for tag := range variants {
		tags = append(tags, tag)
	}
	slices.SortFunc(tags, func(a, b values.LanguageTag) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, tag := range tags {
		w.pair(key+"["+tag.String()+"]", variants[tag])
	}
}

func stringsOf[T interface{ String() string }](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}
