package values

import "strings"

// LanguageTag identifies the locale of a localized key, e.g. the "de" in
// Name[de]. Tags are stored trimmed and lowercased.
type LanguageTag struct {
	value string
}

// NewLanguageTag normalizes and validates a language tag.
// After trimming and lowercasing the tag must be two or three characters long.
func NewLanguageTag(tag string) (LanguageTag, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if n := len([]rune(normalized)); n < 2 || n > 3 {
		return LanguageTag{}, NewValidationError("language tag", tag, "must be 2 or 3 characters")
	}
	return LanguageTag{value: normalized}, nil
}

// MustNewLanguageTag creates a LanguageTag or panics
func MustNewLanguageTag(tag string) LanguageTag {
	lt, err := NewLanguageTag(tag)
	if err != nil {
		panic(err)
	}
	return lt
}

// String returns the string representation
func (l LanguageTag) String() string {
	return l.value
}

// IsEmpty returns true if this is the zero value
func (l LanguageTag) IsEmpty() bool {
	return l.value == ""
}
