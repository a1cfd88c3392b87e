package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

// List returns a segment's feedback, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.FeedbackEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.segments.GetByID(ctx, input.SegmentID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	events, err := s.events.ListBySegment(ctx, input.SegmentID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return events, nil
}

// Summary returns per-action counts and the lifetime rating mean for a segment.
func (s *Service) Summary(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error) {
	if _, err := s.segments.GetByID(ctx, segmentID); err != nil {
		return nil, err
	}

	summary, err := s.events.Summary(ctx, segmentID)
	if err != nil {
		return nil, fmt.Errorf("feedback summary: %w", err)
	}
	return summary, nil
}
