package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackEvent is an immutable record of a user's interaction with a suggested segment.
type FeedbackEvent struct {
	ID        uuid.UUID
	SegmentID uuid.UUID
	UserID    uuid.UUID
	Action    FeedbackAction
	Rating    *int
	Comment   *string
	ProjectID *uuid.UUID
	CreatedAt time.Time
}

// FeedbackSummary aggregates all feedback recorded for one segment.
type FeedbackSummary struct {
	SegmentID   uuid.UUID
	Counts      map[FeedbackAction]int
	RatingCount int
	AvgRating   *float64
}

// Total returns the number of feedback events across all actions.
func (s FeedbackSummary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}
