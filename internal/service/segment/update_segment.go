package segment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/pkg/ctxutil"
)

// UpdateSegment merges a partial update into an active segment. When the
// source or target text actually changes, the new text is appended to the
// version ledger in the same transaction, attributed to the caller.
func (s *Service) UpdateSegment(ctx context.Context, input UpdateSegmentInput) (*domain.Segment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.SegmentUpdateParams{
		SourceText:   trimPtr(input.SourceText),
		TargetText:   trimPtr(input.TargetText),
		Context:      trimPtr(input.Context),
		Event:        trimPtr(input.Event),
		Topic:        trimPtr(input.Topic),
		TranslatedBy: input.TranslatedBy,
		ContentID:    input.ContentID,
		ProjectID:    input.ProjectID,
		Metadata:     input.Metadata,
	}
	if input.SourceLanguage != nil {
		lang := domain.NormalizeLanguage(*input.SourceLanguage)
		params.SourceLanguage = &lang
	}
	if input.TargetLanguage != nil {
		lang := domain.NormalizeLanguage(*input.TargetLanguage)
		params.TargetLanguage = &lang
	}

	var (
		updated *domain.Segment
		version *domain.VersionRecord
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.segments.LockByID(txCtx, input.SegmentID)
		if err != nil {
			return err
		}

		textChanged := (params.SourceText != nil && *params.SourceText != current.SourceText) ||
			(params.TargetText != nil && *params.TargetText != current.TargetText)

		var editor uuid.UUID
		if textChanged {
			userID, ok := ctxutil.UserIDFromCtx(txCtx)
			if !ok {
				return domain.ErrUnauthorized
			}
			editor = userID
		}

		srcLang := valueOr(params.SourceLanguage, current.SourceLanguage)
		tgtLang := valueOr(params.TargetLanguage, current.TargetLanguage)
		if srcLang == tgtLang {
			return domain.NewValidationError("target_language", "must differ from source_language")
		}

		updated, err = s.segments.Update(txCtx, input.SegmentID, params)
		if err != nil {
			return fmt.Errorf("update segment: %w", err)
		}

		if !textChanged {
			return nil
		}

		version, err = s.versions.Append(txCtx, &domain.VersionRecord{
			SegmentID:    updated.ID,
			SourceText:   updated.SourceText,
			TargetText:   updated.TargetText,
			ChangedBy:    editor,
			ChangeReason: domain.TrimOrNil(input.ChangeReason),
		})
		if err != nil {
			return fmt.Errorf("append version: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{slog.String("segment_id", updated.ID.String())}
	if version != nil {
		attrs = append(attrs, slog.Int("version", version.Version))
	}
	s.log.InfoContext(ctx, "segment updated", attrs...)

	return updated, nil
}

// trimPtr trims but keeps ptr("") so the repository clears the tag.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func valueOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}
