package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/pkg/ctxutil"
)

// Record appends a feedback event from the authenticated caller and applies
// its effect on the segment in one transaction:
//   - used increments usage_count
//   - rated folds the rating into avg_rating
//   - copied and dismissed only append the event
//
// The segment row is locked first, so concurrent feedback on one segment is
// serialized and none of its increments are lost.
func (s *Service) Record(ctx context.Context, input RecordInput) (*RecordResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result RecordResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		seg, err := s.segments.LockByID(txCtx, input.SegmentID)
		if err != nil {
			return err
		}

		ev, err := s.events.Create(txCtx, &domain.FeedbackEvent{
			SegmentID: seg.ID,
			UserID:    userID,
			Action:    input.Action,
			Rating:    input.Rating,
			Comment:   domain.TrimOrNil(input.Comment),
			ProjectID: input.ProjectID,
		})
		if err != nil {
			return fmt.Errorf("create feedback: %w", err)
		}
		result.Event = ev

		switch input.Action {
		case domain.FeedbackActionUsed:
			seg, err = s.segments.IncrementUsage(txCtx, seg.ID)
			if err != nil {
				return fmt.Errorf("increment usage: %w", err)
			}
		case domain.FeedbackActionRated:
			seg, err = s.applyRating(txCtx, seg, *input.Rating)
			if err != nil {
				return err
			}
		}
		result.Segment = seg
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("segment_id", input.SegmentID.String()),
		slog.String("user_id", userID.String()),
		slog.String("action", input.Action.String()),
	}
	if input.Rating != nil {
		attrs = append(attrs, slog.Int("rating", *input.Rating))
	}
	s.log.InfoContext(ctx, "feedback recorded", attrs...)

	return &result, nil
}

// applyRating updates avg_rating. With a rating window the mean covers the
// most recent ratings, including the event just appended in this transaction.
func (s *Service) applyRating(ctx context.Context, seg *domain.Segment, rating int) (*domain.Segment, error) {
	var windowMean *float64
	if s.cfg.RatingWindow > 0 {
		mean, err := s.events.RecentRatingMean(ctx, seg.ID, s.cfg.RatingWindow)
		if err != nil {
			return nil, err
		}
		windowMean = mean
	}

	updated, err := s.segments.AddRating(ctx, seg.ID, rating, windowMean)
	if err != nil {
		return nil, fmt.Errorf("add rating: %w", err)
	}
	return updated, nil
}
