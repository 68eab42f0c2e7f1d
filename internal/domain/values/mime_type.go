package values

import "regexp"

// mimeTypePattern accepts RFC 6838 restricted names on both sides of a single slash.
var mimeTypePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*/[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*$`)

// MimeType is a validated "type/subtype" string.
type MimeType struct {
	value string
}

// NewMimeType creates a MimeType with validation
func NewMimeType(s string) (MimeType, error) {
	if !IsMimeType(s) {
		return MimeType{}, NewValidationError("MIME type", s, "expected type/subtype")
	}
	return MimeType{value: s}, nil
}

// MustNewMimeType creates a MimeType or panics
func MustNewMimeType(s string) MimeType {
	mt, err := NewMimeType(s)
	if err != nil {
		panic(err)
	}
	return mt
}

// IsMimeType reports whether s has the type/subtype form.
func IsMimeType(s string) bool {
	return mimeTypePattern.MatchString(s)
}

// String returns the string representation
func (m MimeType) String() string {
	return m.value
}
