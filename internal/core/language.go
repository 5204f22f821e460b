package core

import "fmt"

// DefaultLanguage is the fallback for users without a stored preference
// and for unknown codes.
const DefaultLanguage = "en"

// Languages is the closed set of recognized display languages.
var Languages = []string{"en", "ru", "kg"}

// ValidLanguage reports whether code belongs to the recognized set.
func ValidLanguage(code string) bool {
	for _, l := range Languages {
		if l == code {
			return true
		}
	}
	return false
}

// ParseLanguage validates a user-supplied language code, returning
// ErrUnknownLanguage for anything outside the recognized set.
func ParseLanguage(code string) (string, error) {
	if !ValidLanguage(code) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return code, nil
}
