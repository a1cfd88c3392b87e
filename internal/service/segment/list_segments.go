package segment

import (
	"context"
	"fmt"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

// ListSegments returns active segments, newest first, with the total count
// matching the filter.
func (s *Service) ListSegments(ctx context.Context, input ListSegmentsInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	filter := domain.SegmentFilter{
		SourceLanguage: domain.NormalizeLanguage(input.SourceLanguage),
		TargetLanguage: domain.NormalizeLanguage(input.TargetLanguage),
		Event:          domain.TrimOrNil(input.Event),
		Topic:          domain.TrimOrNil(input.Topic),
		TranslatorID:   input.TranslatorID,
		Limit:          limit,
		Offset:         input.Offset,
	}

	segments, err := s.segments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}

	total, err := s.segments.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count segments: %w", err)
	}

	return &ListResult{Segments: segments, Total: total}, nil
}
