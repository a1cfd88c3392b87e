package segment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/pkg/ctxutil"
)

// CreateSegment inserts a new segment. Usage and rating statistics start at zero.
// When TranslatedBy is omitted the authenticated caller, if any, is recorded.
func (s *Service) CreateSegment(ctx context.Context, input CreateSegmentInput) (*domain.Segment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	seg := &domain.Segment{
		SourceText:     strings.TrimSpace(input.SourceText),
		TargetText:     strings.TrimSpace(input.TargetText),
		SourceLanguage: languageOr(input.SourceLanguage, s.cfg.SourceLanguage),
		TargetLanguage: languageOr(input.TargetLanguage, s.cfg.TargetLanguage),
		Context:        domain.TrimOrNil(input.Context),
		Event:          domain.TrimOrNil(input.Event),
		Topic:          domain.TrimOrNil(input.Topic),
		TranslatedBy:   input.TranslatedBy,
		ContentID:      input.ContentID,
		ProjectID:      input.ProjectID,
		Metadata:       input.Metadata,
	}
	if seg.TranslatedBy == nil {
		if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
			seg.TranslatedBy = &userID
		}
	}
	if seg.SourceLanguage == seg.TargetLanguage {
		return nil, domain.NewValidationError("target_language", "must differ from source_language")
	}

	created, err := s.segments.Create(ctx, seg)
	if err != nil {
		return nil, fmt.Errorf("create segment: %w", err)
	}

	s.log.InfoContext(ctx, "segment created",
		slog.String("segment_id", created.ID.String()),
		slog.String("source_language", created.SourceLanguage),
		slog.String("target_language", created.TargetLanguage),
	)

	return created, nil
}
