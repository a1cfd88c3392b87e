package match

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

// SearchInput holds the parameters for a TM search. Zero values fall back to
// the configured defaults.
type SearchInput struct {
	SourceText     string
	SourceLanguage string
	TargetLanguage string
	Threshold      *int // nil = default threshold
	Event          *string
	Topic          *string
	TranslatorID   *uuid.UUID
	Limit          int // 0 = default limit
}

// Validate checks all fields and collects all errors. maxSourceLen bounds the
// query length in characters.
func (i SearchInput) Validate(maxSourceLen int) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.SourceText)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "required"})
	} else if maxSourceLen > 0 && utf8.RuneCountInString(text) > maxSourceLen {
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "too long"})
	}
	if i.Threshold != nil && (*i.Threshold < 0 || *i.Threshold > 100) {
		errs = append(errs, domain.FieldError{Field: "similarity", Message: "must be between 0 and 100"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
