package segment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/config"
	"github.com/dingla0/TranslationTracker/internal/domain"
)

type segmentRepo interface {
	Create(ctx context.Context, seg *domain.Segment) (*domain.Segment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	Update(ctx context.Context, id uuid.UUID, params domain.SegmentUpdateParams) (*domain.Segment, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.SegmentFilter) ([]domain.Segment, error)
	Count(ctx context.Context, filter domain.SegmentFilter) (int, error)
}

type versionRepo interface {
	Append(ctx context.Context, rec *domain.VersionRecord) (*domain.VersionRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxTextLength    = 10000
)

// Service owns segment identity and lifecycle: insert, partial update, listing
// and soft delete. Text edits are recorded in the version ledger.
type Service struct {
	segments segmentRepo
	versions versionRepo
	tx       txManager
	cfg      config.MatchConfig
	log      *slog.Logger
}

// NewService creates a new Segment service. cfg supplies the default language pair.
func NewService(
	log *slog.Logger,
	segments segmentRepo,
	versions versionRepo,
	tx txManager,
	cfg config.MatchConfig,
) *Service {
	return &Service{
		segments: segments,
		versions: versions,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "segment"),
	}
}

// ListResult is a page of segments plus the unpaginated total.
type ListResult struct {
	Segments []domain.Segment
	Total    int
}

// languageOr normalizes code, falling back to def when empty.
func languageOr(code, def string) string {
	if c := domain.NormalizeLanguage(code); c != "" {
		return c
	}
	return def
}
