// Package match ranks translation memory segments against a query text.
// Candidates are pre-filtered by the store, scored in parallel, boosted by
// shared context, thresholded and ordered.
package match

import (
	"context"
	"log/slog"

	"github.com/dingla0/TranslationTracker/internal/config"
	"github.com/dingla0/TranslationTracker/internal/domain"
)

type candidateStore interface {
	FindCandidates(ctx context.Context, filter domain.SegmentFilter) ([]domain.Segment, error)
}

// Service provides TM search. It is read-only and safe for concurrent use.
type Service struct {
	store candidateStore
	cfg   config.MatchConfig
	log   *slog.Logger
}

// NewService creates a new Match service.
func NewService(log *slog.Logger, store candidateStore, cfg config.MatchConfig) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		log:   log.With("service", "match"),
	}
}
