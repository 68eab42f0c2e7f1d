package values

import "regexp"

var fileNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// FileName is the base name of a launcher file, without the .desktop suffix.
// Only lowercase ASCII letters and digits are allowed, starting with a letter.
type FileName struct {
	value string
}

// NewFileName creates a FileName with validation
func NewFileName(name string) (FileName, error) {
	if !fileNamePattern.MatchString(name) {
		return FileName{}, NewValidationError("file name", name, "must match [a-z][a-z0-9]*")
	}
	return FileName{value: name}, nil
}

// MustNewFileName creates a FileName or panics
func MustNewFileName(name string) FileName {
	fn, err := NewFileName(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// String returns the string representation
func (f FileName) String() string {
	return f.value
}

// DesktopFile returns the on-disk file name, e.g. "myapp.desktop".
func (f FileName) DesktopFile() string {
	return f.value + ".desktop"
}

// IsEmpty returns true if this is the zero value
func (f FileName) IsEmpty() bool {
	return f.value == ""
}

// Equals checks if two file names are equal
func (f FileName) Equals(other FileName) bool {
	return f.value == other.value
}
