// Package ledger maintains the append-only version history of segments.
// It never changes segment content and does not take part in search.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/pkg/ctxutil"
)

type segmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
}

type versionRepo interface {
	Append(ctx context.Context, rec *domain.VersionRecord) (*domain.VersionRecord, error)
	ListBySegment(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides version ledger operations.
type Service struct {
	segments segmentRepo
	versions versionRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Ledger service.
func NewService(log *slog.Logger, segments segmentRepo, versions versionRepo, tx txManager) *Service {
	return &Service{
		segments: segments,
		versions: versions,
		tx:       tx,
		log:      log.With("service", "ledger"),
	}
}

// RecordVersionInput holds a content change to append.
type RecordVersionInput struct {
	SegmentID    uuid.UUID
	SourceText   string
	TargetText   string
	ChangeReason *string
}

// Validate checks all fields and collects all errors.
func (i RecordVersionInput) Validate() error {
	var errs []domain.FieldError

	if i.SegmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "segment_id", Message: "required"})
	}
	if strings.TrimSpace(i.SourceText) == "" {
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "required"})
	}
	if strings.TrimSpace(i.TargetText) == "" {
		errs = append(errs, domain.FieldError{Field: "target_text", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordVersion appends the next version of a segment, attributed to the
// caller. Version numbers start at 1 and have no gaps: the segment row lock
// serializes concurrent appends for the same segment.
func (s *Service) RecordVersion(ctx context.Context, input RecordVersionInput) (*domain.VersionRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var rec *domain.VersionRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.segments.LockByID(txCtx, input.SegmentID); err != nil {
			return err
		}

		var err error
		rec, err = s.versions.Append(txCtx, &domain.VersionRecord{
			SegmentID:    input.SegmentID,
			SourceText:   strings.TrimSpace(input.SourceText),
			TargetText:   strings.TrimSpace(input.TargetText),
			ChangedBy:    userID,
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

	s.log.InfoContext(ctx, "version recorded",
		slog.String("segment_id", rec.SegmentID.String()),
		slog.String("changed_by", userID.String()),
		slog.Int("version", rec.Version),
	)

	return rec, nil
}

// ListVersions returns a segment's versions ordered by version number.
// An empty order means ascending.
func (s *Service) ListVersions(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error) {
	if order == "" {
		order = domain.SortOrderAsc
	}
	if !order.IsValid() {
		return nil, domain.NewValidationError("order", "must be asc or desc")
	}

	if _, err := s.segments.GetByID(ctx, segmentID); err != nil {
		return nil, err
	}

	records, err := s.versions.ListBySegment(ctx, segmentID, order)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return records, nil
}
