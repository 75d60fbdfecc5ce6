package errors

import (
	"strings"
	"unicode"
)

// MaxIdentifierLength bounds winget package identifiers.
const MaxIdentifierLength = 128

// ValidateIdentifier validates a package identifier before it is passed to
// the winget command line.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No whitespace or control characters
//   - No leading "-" (would be parsed as a winget flag)
//   - Maximum length of MaxIdentifierLength characters
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidIdentifier, "identifier cannot be empty")
	}
	if len(id) > MaxIdentifierLength {
		return New(ErrCodeInvalidIdentifier, "identifier too long (max %d characters): %q", MaxIdentifierLength, id)
	}
	if strings.HasPrefix(id, "-") {
		return New(ErrCodeInvalidIdentifier, "identifier cannot start with '-': %q", id)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidIdentifier, "identifier contains whitespace or control characters: %q", id)
		}
	}
	return nil
}

// CheckDuplicates rejects identifiers that repeat, ignoring case.
// Identifiers are not otherwise validated; an empty list is valid.
func CheckDuplicates(ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		key := strings.ToLower(id)
		if seen[key] {
			return New(ErrCodeInvalidInput, "duplicate identifier: %q", id)
		}
		seen[key] = true
	}
	return nil
}
