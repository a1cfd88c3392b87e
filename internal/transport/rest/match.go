package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/match"
)

type matchService interface {
	Search(ctx context.Context, input match.SearchInput) ([]domain.Match, error)
}

// MatchHandler serves TM lookups.
type MatchHandler struct {
	svc matchService
	log *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(svc matchService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{svc: svc, log: logger.With("handler", "match")}
}

// Search handles GET /api/v1/matches. The similarity parameter is the
// minimum score; omitted parameters take the configured defaults.
func (h *MatchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := match.SearchInput{
		SourceText:     r.URL.Query().Get("sourceText"),
		SourceLanguage: q.get("sourceLanguage"),
		TargetLanguage: q.get("targetLanguage"),
		Threshold:      q.intPtr("similarity"),
		Event:          q.strPtr("event"),
		Topic:          q.strPtr("topic"),
		TranslatorID:   q.uuidPtr("translatorId"),
		Limit:          q.intOr("limit", 0),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	matches, err := h.svc.Search(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchList(matches))
}
