package domain

import (
	"strings"
	"unicode"
)

// NormalizeName folds a child's name into a storage key: lowercase letters,
// digits, '_' and '-' only. A name with nothing left folds to GuestKey.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return GuestKey
	}
	return b.String()
}

// CheckName rejects blank names before any session starts.
func CheckName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}
