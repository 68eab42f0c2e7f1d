package values

import (
	"fmt"
	"strings"
)

// EntryType is the kind of desktop entry (the Type key).
type EntryType int

const (
	EntryTypeUnknown     EntryType = 0
	EntryTypeApplication EntryType = 1
	EntryTypeLink        EntryType = 2
	EntryTypeDirectory   EntryType = 3
)

// ParseEntryType creates an EntryType from its name, case-insensitively.
func ParseEntryType(s string) (EntryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "application":
		return EntryTypeApplication, nil
	case "link":
		return EntryTypeLink, nil
	case "directory":
		return EntryTypeDirectory, nil
	default:
		return EntryTypeUnknown, NewValidationError("entry type", s, "expected Application, Link or Directory")
	}
}

// String returns the value written after "Type=".
func (t EntryType) String() string {
	switch t {
	case EntryTypeApplication:
		return "Application"
	case EntryTypeLink:
		return "Link"
	case EntryTypeDirectory:
		return "Directory"
	default:
		return fmt.Sprintf("EntryType(%d)", int(t))
	}
}

// IsValid returns true for the three registered entry types.
func (t EntryType) IsValid() bool {
	return t >= EntryTypeApplication && t <= EntryTypeDirectory
}

// ID returns the numeric type identifier.
func (t EntryType) ID() int {
	return int(t)
}
