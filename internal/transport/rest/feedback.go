package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/feedback"
)

type feedbackService interface {
	Record(ctx context.Context, input feedback.RecordInput) (*feedback.RecordResult, error)
	List(ctx context.Context, input feedback.ListInput) ([]domain.FeedbackEvent, error)
	Summary(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error)
}

// FeedbackHandler serves feedback recording and analytics.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type recordFeedbackRequest struct {
	Action    string     `json:"action"    validate:"required,oneof=used dismissed rated copied"`
	Rating    *int       `json:"rating"    validate:"omitempty,min=1,max=5"`
	Comment   *string    `json:"comment"   validate:"omitempty,max=2000"`
	ProjectID *uuid.UUID `json:"projectId"`
}

// Record handles POST /api/v1/segments/{id}/feedback.
func (h *FeedbackHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := decodeJSON[recordFeedbackRequest](r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Record(r.Context(), feedback.RecordInput{
		SegmentID: id,
		Action:    domain.FeedbackAction(req.Action),
		Rating:    req.Rating,
		Comment:   req.Comment,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordFeedbackResponse{
		Event:   toFeedbackResponse(result.Event),
		Segment: toSegmentResponse(result.Segment),
	})
}

// List handles GET /api/v1/segments/{id}/feedback.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	q := newQueryReader(r)
	input := feedback.ListInput{
		SegmentID: id,
		Limit:     q.intOr("limit", 0),
		Offset:    q.intOr("offset", 0),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]feedbackResponse, len(events))
	for i := range events {
		items[i] = toFeedbackResponse(&events[i])
	}
	writeJSON(w, http.StatusOK, feedbackListResponse{Items: items})
}

// Summary handles GET /api/v1/segments/{id}/feedback/summary.
func (h *FeedbackHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	summary, err := h.svc.Summary(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}
