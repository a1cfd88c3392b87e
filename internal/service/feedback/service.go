package feedback

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/config"
	"github.com/dingla0/TranslationTracker/internal/domain"
)

type segmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	AddRating(ctx context.Context, id uuid.UUID, rating int, windowMean *float64) (*domain.Segment, error)
}

type feedbackRepo interface {
	Create(ctx context.Context, ev *domain.FeedbackEvent) (*domain.FeedbackEvent, error)
	ListBySegment(ctx context.Context, segmentID uuid.UUID, limit, offset int) ([]domain.FeedbackEvent, error)
	Summary(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error)
	RecentRatingMean(ctx context.Context, segmentID uuid.UUID, window int) (*float64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 2000
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service records user feedback on suggested segments and keeps the segment's
// usage and rating statistics in step with it.
type Service struct {
	segments segmentRepo
	events   feedbackRepo
	tx       txManager
	cfg      config.FeedbackConfig
	log      *slog.Logger
}

// NewService creates a new Feedback service.
func NewService(
	log *slog.Logger,
	segments segmentRepo,
	events feedbackRepo,
	tx txManager,
	cfg config.FeedbackConfig,
) *Service {
	return &Service{
		segments: segments,
		events:   events,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "feedback"),
	}
}

// RecordResult is the appended event and the segment state after it was applied.
type RecordResult struct {
	Event   *domain.FeedbackEvent
	Segment *domain.Segment
}
