package entities

import (
	"maps"
	"slices"

	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// DesktopEntry is an immutable launcher descriptor. It is created by
// Builder.Build and never changes afterwards; accessors hand out copies.
type DesktopEntry struct {
	fileName values.FileName
	kind     values.EntryType
	name     string
	exec     string

	tryExec        string
	icon           string
	comment        string
	genericName    string
	path           string
	startupWMClass string

	terminal      bool
	noDisplay     bool
	startupNotify bool

	categories []values.Category
	keywords   []string
	mimeTypes  []values.MimeType
	onlyShowIn []values.DesktopEnvironment
	notShowIn  []values.DesktopEnvironment

	nameLang        map[values.LanguageTag]string
	genericNameLang map[values.LanguageTag]string
	commentLang     map[values.LanguageTag]string
}

// FileName returns the launcher file name without extension.
func (e *DesktopEntry) FileName() values.FileName { return e.fileName }

// Type returns the entry type.
func (e *DesktopEntry) Type() values.EntryType { return e.kind }

// Name returns the display name.
func (e *DesktopEntry) Name() string { return e.name }

// Exec returns the command line used to start the program.
func (e *DesktopEntry) Exec() string { return e.exec }

// TryExec returns the TryExec path, or "" when absent.
func (e *DesktopEntry) TryExec() string { return e.tryExec }

// Icon returns the icon reference, or "" when absent.
func (e *DesktopEntry) Icon() string { return e.icon }

// Comment returns the tooltip text, or "" when absent.
func (e *DesktopEntry) Comment() string { return e.comment }

// GenericName returns the generic name, or "" when absent.
func (e *DesktopEntry) GenericName() string { return e.genericName }

// Path returns the working directory, or "" when absent.
func (e *DesktopEntry) Path() string { return e.path }

// StartupWMClass returns the window manager class, or "" when absent.
func (e *DesktopEntry) StartupWMClass() string { return e.startupWMClass }

// Terminal reports whether the program runs in a terminal.
func (e *DesktopEntry) Terminal() bool { return e.terminal }

// NoDisplay reports whether the entry is hidden from menus.
func (e *DesktopEntry) NoDisplay() bool { return e.noDisplay }

// StartupNotify reports whether the program sends startup notifications.
func (e *DesktopEntry) StartupNotify() bool { return e.startupNotify }

// Categories returns the menu categories in insertion order.
func (e *DesktopEntry) Categories() []values.Category { return slices.Clone(e.categories) }

// Keywords returns the search keywords in insertion order.
func (e *DesktopEntry) Keywords() []string { return slices.Clone(e.keywords) }

// MimeTypes returns the supported MIME types in insertion order.
func (e *DesktopEntry) MimeTypes() []values.MimeType { return slices.Clone(e.mimeTypes) }

// OnlyShowIn returns the environments the entry is restricted to.
func (e *DesktopEntry) OnlyShowIn() []values.DesktopEnvironment { return slices.Clone(e.onlyShowIn) }

// NotShowIn returns the environments the entry is hidden in.
func (e *DesktopEntry) NotShowIn() []values.DesktopEnvironment { return slices.Clone(e.notShowIn) }

// NameLang returns the localized display names.
func (e *DesktopEntry) NameLang() map[values.LanguageTag]string { return maps.Clone(e.nameLang) }

// GenericNameLang returns the localized generic names.
func (e *DesktopEntry) GenericNameLang() map[values.LanguageTag]string {
	return maps.Clone(e.genericNameLang)
}

// CommentLang returns the localized comments.
func (e *DesktopEntry) CommentLang() map[values.LanguageTag]string { return maps.Clone(e.commentLang) }
