package domain

import (
	"strings"
)

// NormalizeLanguage trims and lowercases a language code ("KO " -> "ko").
func NormalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// TrimOrNil trims whitespace. Returns nil if the input is nil or the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
