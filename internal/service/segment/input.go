package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

// CreateSegmentInput holds the parameters for inserting a segment.
type CreateSegmentInput struct {
	SourceText     string
	TargetText     string
	SourceLanguage string // empty = deployment default
	TargetLanguage string // empty = deployment default
	Context        *string
	Event          *string
	Topic          *string
	TranslatedBy   *uuid.UUID // nil = caller
	ContentID      *uuid.UUID
	ProjectID      *uuid.UUID
	Metadata       map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateSegmentInput) Validate() error {
	var errs []domain.FieldError
	errs = checkText(errs, "source_text", i.SourceText)
	errs = checkText(errs, "target_text", i.TargetText)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSegmentInput holds a partial update. nil fields are left unchanged;
// for Context, Event and Topic ptr("") clears the tag.
type UpdateSegmentInput struct {
	SegmentID      uuid.UUID
	SourceText     *string
	TargetText     *string
	SourceLanguage *string
	TargetLanguage *string
	Context        *string
	Event          *string
	Topic          *string
	TranslatedBy   *uuid.UUID
	ContentID      *uuid.UUID
	ProjectID      *uuid.UUID
	Metadata       map[string]any
	ChangeReason   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateSegmentInput) Validate() error {
	var errs []domain.FieldError

	if i.SegmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "segment_id", Message: "required"})
	}
	if i.SourceText != nil {
		errs = checkText(errs, "source_text", *i.SourceText)
	}
	if i.TargetText != nil {
		errs = checkText(errs, "target_text", *i.TargetText)
	}
	if i.SourceLanguage != nil && domain.NormalizeLanguage(*i.SourceLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "source_language", Message: "must not be empty"})
	}
	if i.TargetLanguage != nil && domain.NormalizeLanguage(*i.TargetLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "must not be empty"})
	}
	if i.params() == (updateShape{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// updateShape records which fields are present; it is comparable so an empty
// update can be detected with ==.
type updateShape struct {
	source, target, srcLang, tgtLang, context, event, topic, translator, content, project, metadata bool
}

func (i UpdateSegmentInput) params() updateShape {
	return updateShape{
		source:     i.SourceText != nil,
		target:     i.TargetText != nil,
		srcLang:    i.SourceLanguage != nil,
		tgtLang:    i.TargetLanguage != nil,
		context:    i.Context != nil,
		event:      i.Event != nil,
		topic:      i.Topic != nil,
		translator: i.TranslatedBy != nil,
		content:    i.ContentID != nil,
		project:    i.ProjectID != nil,
		metadata:   i.Metadata != nil,
	}
}

// ListSegmentsInput filters and paginates segment listing.
type ListSegmentsInput struct {
	SourceLanguage string
	TargetLanguage string
	Event          *string
	Topic          *string
	TranslatorID   *uuid.UUID
	Limit          int // 0 = DefaultListLimit
	Offset         int
}

// Validate checks all fields and collects all errors.
func (i ListSegmentsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkText(errs []domain.FieldError, field, text string) []domain.FieldError {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(trimmed) > MaxTextLength:
		errs = append(errs, domain.FieldError{Field: field, Message: "max 10000 characters"})
	}
	return errs
}
