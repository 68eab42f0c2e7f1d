package entities

import (
	"maps"
	"slices"
	"strings"

	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// Builder accumulates the fields of a DesktopEntry.
//
// Setters that cannot fail return the builder so calls can be chained.
// Setters that validate their input return an error instead and leave the
// builder untouched when the input is rejected.
type Builder struct {
	entry DesktopEntry
}

// NewBuilder creates a builder for the four required fields.
func NewBuilder(fileName string, kind values.EntryType, name, exec string) (*Builder, error) {
	fn, err := values.NewFileName(fileName)
	if err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, values.NewValidationError("entry type", kind.String(), "not a registered entry type")
	}
	if name == "" {
		return nil, values.NewValidationError("name", name, "must not be empty")
	}
	if exec == "" {
		return nil, values.NewValidationError("exec", exec, "must not be empty")
	}

	return &Builder{
		entry: DesktopEntry{
			fileName:        fn,
			kind:            kind,
			name:            name,
			exec:            exec,
			nameLang:        make(map[values.LanguageTag]string),
			genericNameLang: make(map[values.LanguageTag]string),
			commentLang:     make(map[values.LanguageTag]string),
		},
	}, nil
}

// optional treats blank strings as "absent".
func optional(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// TryExec sets the TryExec path. A blank value clears it.
func (b *Builder) TryExec(tryExec string) *Builder {
	b.entry.tryExec = optional(tryExec)
	return b
}

// Icon sets the icon name or path. A blank value clears it.
func (b *Builder) Icon(icon string) *Builder {
	b.entry.icon = optional(icon)
	return b
}

// Comment sets the tooltip text. A blank value clears it.
func (b *Builder) Comment(comment string) *Builder {
	b.entry.comment = optional(comment)
	return b
}

// GenericName sets the generic name, e.g. "Web Browser". A blank value clears it.
func (b *Builder) GenericName(genericName string) *Builder {
	b.entry.genericName = optional(genericName)
	return b
}

// Path sets the working directory. A blank value clears it.
func (b *Builder) Path(path string) *Builder {
	b.entry.path = optional(path)
	return b
}

// StartupWMClass sets the window manager class. A blank value clears it.
func (b *Builder) StartupWMClass(class string) *Builder {
	b.entry.startupWMClass = optional(class)
	return b
}

// Terminal sets whether the program runs in a terminal.
func (b *Builder) Terminal(terminal bool) *Builder {
	b.entry.terminal = terminal
	return b
}

// NoDisplay sets whether the entry is hidden from menus.
func (b *Builder) NoDisplay(noDisplay bool) *Builder {
	b.entry.noDisplay = noDisplay
	return b
}

// StartupNotify sets whether the program sends startup notifications.
func (b *Builder) StartupNotify(notify bool) *Builder {
	b.entry.startupNotify = notify
	return b
}

// AddCategory adds a menu category. Adding a category twice has no effect.
func (b *Builder) AddCategory(category values.Category) *Builder {
	if category.IsValid() && !slices.Contains(b.entry.categories, category) {
		b.entry.categories = append(b.entry.categories, category)
	}
	return b
}

// AddKeyword adds a search keyword. Blank and duplicate keywords are ignored.
func (b *Builder) AddKeyword(keyword string) *Builder {
	if optional(keyword) != "" && !slices.Contains(b.entry.keywords, keyword) {
		b.entry.keywords = append(b.entry.keywords, keyword)
	}
	return b
}

// AddKeywords adds every keyword in order.
func (b *Builder) AddKeywords(keywords ...string) *Builder {
	for _, k := range keywords {
		b.AddKeyword(k)
	}
	return b
}

// AddOnlyShowIn restricts the entry to the given desktop environment.
func (b *Builder) AddOnlyShowIn(env values.DesktopEnvironment) *Builder {
	if env.IsValid() && !slices.Contains(b.entry.onlyShowIn, env) {
		b.entry.onlyShowIn = append(b.entry.onlyShowIn, env)
	}
	return b
}

// AddNotShowIn hides the entry in the given desktop environment.
func (b *Builder) AddNotShowIn(env values.DesktopEnvironment) *Builder {
	if env.IsValid() && !slices.Contains(b.entry.notShowIn, env) {
		b.entry.notShowIn = append(b.entry.notShowIn, env)
	}
	return b
}

// AddMimeType adds a supported MIME type after checking the type/subtype form.
func (b *Builder) AddMimeType(mimeType string) error {
	mt, err := values.NewMimeType(mimeType)
	if err != nil {
		return err
	}
	if !slices.Contains(b.entry.mimeTypes, mt) {
		b.entry.mimeTypes = append(b.entry.mimeTypes, mt)
	}
	return nil
}

// AddNameLang sets the display name for a language, replacing any earlier value.
func (b *Builder) AddNameLang(tag, name string) error {
	return addLanguageVariant(&b.entry.nameLang, tag, name)
}

// AddGenericNameLang sets the generic name for a language.
func (b *Builder) AddGenericNameLang(tag, genericName string) error {
	return addLanguageVariant(&b.entry.genericNameLang, tag, genericName)
}

// AddCommentLang sets the comment for a language.
func (b *Builder) AddCommentLang(tag, comment string) error {
	return addLanguageVariant(&b.entry.commentLang, tag, comment)
}

// addLanguageVariant allocates the map on first use so a zero Builder is usable.
func addLanguageVariant(target *map[values.LanguageTag]string, tag, value string) error {
	lt, err := values.NewLanguageTag(tag)
	if err != nil {
		return err
	}
	if *target == nil {
		*target = make(map[values.LanguageTag]string)
	}
	(*target)[lt] = value
	return nil
}

// Build returns a snapshot of the accumulated fields. The builder stays
// usable; later changes do not affect entries already built.
func (b *Builder) Build() *DesktopEntry {
	e := b.entry
	e.categories = slices.Clone(b.entry.categories)
	e.keywords = slices.Clone(b.entry.keywords)
	e.mimeTypes = slices.Clone(b.entry.mimeTypes)
	e.onlyShowIn = slices.Clone(b.entry.onlyShowIn)
	e.notShowIn = slices.Clone(b.entry.notShowIn)
	e.nameLang = maps.Clone(b.entry.nameLang)
	e.genericNameLang = maps.Clone(b.entry.genericNameLang)
	e.commentLang = maps.Clone(b.entry.commentLang)
	return &e
}
