// Package dto holds the data shapes exchanged with the outside world.
package dto

// Manifest describes a launcher in a file a user edits by hand. It is
// decoded from YAML or HCL and turned into a DesktopEntry by the manifest
// service, which performs all validation.
type Manifest struct {
	Version        string   `yaml:"version" hcl:"version,optional" json:"version"`
	FileName       string   `yaml:"file_name" hcl:"file_name" json:"file_name"`
	Type           string   `yaml:"type" hcl:"type" json:"type"`
	Name           string   `yaml:"name" hcl:"name" json:"name"`
	Exec           string   `yaml:"exec" hcl:"exec" json:"exec"`
	TryExec        string   `yaml:"try_exec,omitempty" hcl:"try_exec,optional" json:"try_exec,omitempty"`
	Icon           string   `yaml:"icon,omitempty" hcl:"icon,optional" json:"icon,omitempty"`
	Comment        string   `yaml:"comment,omitempty" hcl:"comment,optional" json:"comment,omitempty"`
	GenericName    string   `yaml:"generic_name,omitempty" hcl:"generic_name,optional" json:"generic_name,omitempty"`
	Path           string   `yaml:"path,omitempty" hcl:"path,optional" json:"path,omitempty"`
	StartupWMClass string   `yaml:"startup_wm_class,omitempty" hcl:"startup_wm_class,optional" json:"startup_wm_class,omitempty"`
	Terminal       bool     `yaml:"terminal,omitempty" hcl:"terminal,optional" json:"terminal,omitempty"`
	NoDisplay      bool     `yaml:"no_display,omitempty" hcl:"no_display,optional" json:"no_display,omitempty"`
	StartupNotify  bool     `yaml:"startup_notify,omitempty" hcl:"startup_notify,optional" json:"startup_notify,omitempty"`
	Categories     []string `yaml:"categories,omitempty" hcl:"categories,optional" json:"categories,omitempty"`
	Keywords       []string `yaml:"keywords,omitempty" hcl:"keywords,optional" json:"keywords,omitempty"`
	MimeTypes      []string `yaml:"mime_types,omitempty" hcl:"mime_types,optional" json:"mime_types,omitempty"`
	OnlyShowIn     []string `yaml:"only_show_in,omitempty" hcl:"only_show_in,optional" json:"only_show_in,omitempty"`
	NotShowIn      []string `yaml:"not_show_in,omitempty" hcl:"not_show_in,optional" json:"not_show_in,omitempty"`

	Localized *LocalizedStrings `yaml:"localized,omitempty" hcl:"localized,block" json:"localized,omitempty"`
}

// LocalizedStrings maps language tags to translated values.
type LocalizedStrings struct {
	Name        map[string]string `yaml:"name,omitempty" hcl:"name,optional" json:"name,omitempty"`
	GenericName map[string]string `yaml:"generic_name,omitempty" hcl:"generic_name,optional" json:"generic_name,omitempty"`
	Comment     map[string]string `yaml:"comment,omitempty" hcl:"comment,optional" json:"comment,omitempty"`
}
