package segment

import (
	"context"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

// GetSegment returns an active segment by ID.
func (s *Service) GetSegment(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	return s.segments.GetByID(ctx, id)
}
