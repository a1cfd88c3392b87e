package feedback

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

// RecordInput holds the parameters for recording one feedback event.
type RecordInput struct {
	SegmentID uuid.UUID
	Action    domain.FeedbackAction
	Rating    *int // required iff Action is rated
	Comment   *string
	ProjectID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.SegmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "segment_id", Message: "required"})
	}

	switch {
	case !i.Action.IsValid():
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be one of used, dismissed, rated, copied"})
	case i.Action == domain.FeedbackActionRated && i.Rating == nil:
		errs = append(errs, domain.FieldError{Field: "rating", Message: "required for rated"})
	case i.Action == domain.FeedbackActionRated && (*i.Rating < MinRating || *i.Rating > MaxRating):
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	case i.Action != domain.FeedbackActionRated && i.Rating != nil:
		errs = append(errs, domain.FieldError{Field: "rating", Message: "only allowed for rated"})
	}

	if i.Comment != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Comment)) > MaxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput paginates a segment's feedback.
type ListInput struct {
	SegmentID uuid.UUID
	Limit     int // 0 = DefaultListLimit
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.SegmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "segment_id", Message: "required"})
	}
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
