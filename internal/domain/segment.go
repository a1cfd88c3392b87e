package domain

import (
	"time"

	"github.com/google/uuid"
)

// Segment is a reusable translation unit: a source/target text pair plus the
// contextual tags and usage statistics that drive match ranking.
type Segment struct {
	ID             uuid.UUID
	SourceText     string
	TargetText     string
	SourceLanguage string
	TargetLanguage string
	Context        *string
	Event          *string
	Topic          *string
	TranslatedBy   *uuid.UUID
	ContentID      *uuid.UUID
	ProjectID      *uuid.UUID
	Metadata       map[string]any
	UsageCount     int
	AvgRating      *float64
	RatingCount    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsDeleted returns true if the segment has been soft-deleted.
func (s *Segment) IsDeleted() bool {
	return s.DeletedAt != nil
}

// SegmentUpdateParams holds a partial update. A nil field is left unchanged;
// for the optional tags ptr("") clears the value.
type SegmentUpdateParams struct {
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
}

// ChangesText reports whether the update touches the source or target text.
func (p SegmentUpdateParams) ChangesText() bool {
	return p.SourceText != nil || p.TargetText != nil
}

// SegmentFilter is the hard pre-filter applied before scoring. The language
// pair is mandatory; the remaining fields are optional exact matches.
type SegmentFilter struct {
	SourceLanguage string
	TargetLanguage string
	Event          *string
	Topic          *string
	TranslatorID   *uuid.UUID

	// Limit caps the number of rows returned; 0 means no cap.
	Limit  int
	Offset int
}
