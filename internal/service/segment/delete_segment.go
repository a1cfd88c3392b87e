package segment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteSegment soft-deletes a segment. It disappears from search, feedback
// and versioning; its feedback and version history are retained.
func (s *Service) DeleteSegment(ctx context.Context, id uuid.UUID) error {
	if err := s.segments.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete segment: %w", err)
	}

	s.log.InfoContext(ctx, "segment deleted", slog.String("segment_id", id.String()))
	return nil
}
