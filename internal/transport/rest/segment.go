package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/segment"
)

type segmentService interface {
	CreateSegment(ctx context.Context, input segment.CreateSegmentInput) (*domain.Segment, error)
	GetSegment(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	ListSegments(ctx context.Context, input segment.ListSegmentsInput) (*segment.ListResult, error)
	UpdateSegment(ctx context.Context, input segment.UpdateSegmentInput) (*domain.Segment, error)
	DeleteSegment(ctx context.Context, id uuid.UUID) error
}

// SegmentHandler serves the translation memory CRUD endpoints.
type SegmentHandler struct {
	svc segmentService
	log *slog.Logger
}

// NewSegmentHandler creates a SegmentHandler.
func NewSegmentHandler(svc segmentService, logger *slog.Logger) *SegmentHandler {
	return &SegmentHandler{svc: svc, log: logger.With("handler", "segment")}
}

type createSegmentRequest struct {
	SourceText     string         `json:"sourceText"     validate:"required,max=10000"`
	TargetText     string         `json:"targetText"     validate:"required,max=10000"`
	SourceLanguage string         `json:"sourceLanguage" validate:"omitempty,max=16"`
	TargetLanguage string         `json:"targetLanguage" validate:"omitempty,max=16"`
	Context        *string        `json:"context"        validate:"omitempty,max=2000"`
	Event          *string        `json:"event"          validate:"omitempty,max=200"`
	Topic          *string        `json:"topic"          validate:"omitempty,max=200"`
	TranslatedBy   *uuid.UUID     `json:"translatedBy"`
	ContentID      *uuid.UUID     `json:"contentId"`
	ProjectID      *uuid.UUID     `json:"projectId"`
	Metadata       map[string]any `json:"metadata"`
}

type updateSegmentRequest struct {
	SourceText     *string        `json:"sourceText"     validate:"omitempty,max=10000"`
	TargetText     *string        `json:"targetText"     validate:"omitempty,max=10000"`
	SourceLanguage *string        `json:"sourceLanguage" validate:"omitempty,max=16"`
	TargetLanguage *string        `json:"targetLanguage" validate:"omitempty,max=16"`
	Context        *string        `json:"context"        validate:"omitempty,max=2000"`
	Event          *string        `json:"event"          validate:"omitempty,max=200"`
	Topic          *string        `json:"topic"          validate:"omitempty,max=200"`
	TranslatedBy   *uuid.UUID     `json:"translatedBy"`
	ContentID      *uuid.UUID     `json:"contentId"`
	ProjectID      *uuid.UUID     `json:"projectId"`
	Metadata       map[string]any `json:"metadata"`
	ChangeReason   *string        `json:"changeReason"   validate:"omitempty,max=500"`
}

// Create handles POST /api/v1/segments.
func (h *SegmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[createSegmentRequest](r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	seg, err := h.svc.CreateSegment(r.Context(), segment.CreateSegmentInput{
		SourceText:     req.SourceText,
		TargetText:     req.TargetText,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Context:        req.Context,
		Event:          req.Event,
		Topic:          req.Topic,
		TranslatedBy:   req.TranslatedBy,
		ContentID:      req.ContentID,
		ProjectID:      req.ProjectID,
		Metadata:       req.Metadata,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSegmentResponse(seg))
}

// Get handles GET /api/v1/segments/{id}.
func (h *SegmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	seg, err := h.svc.GetSegment(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSegmentResponse(seg))
}

// List handles GET /api/v1/segments.
func (h *SegmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := segment.ListSegmentsInput{
		SourceLanguage: q.get("sourceLanguage"),
		TargetLanguage: q.get("targetLanguage"),
		Event:          q.strPtr("event"),
		Topic:          q.strPtr("topic"),
		TranslatorID:   q.uuidPtr("translatorId"),
		Limit:          q.intOr("limit", 0),
		Offset:         q.intOr("offset", 0),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListSegments(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]segmentResponse, len(result.Segments))
	for i := range result.Segments {
		items[i] = toSegmentResponse(&result.Segments[i])
	}
	limit := input.Limit
	if limit == 0 {
		limit = segment.DefaultListLimit
	}
	writeJSON(w, http.StatusOK, segmentListResponse{
		Items:  items,
		Total:  result.Total,
		Limit:  limit,
		Offset: input.Offset,
	})
}

// Update handles PATCH /api/v1/segments/{id}.
func (h *SegmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := decodeJSON[updateSegmentRequest](r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	seg, err := h.svc.UpdateSegment(r.Context(), segment.UpdateSegmentInput{
		SegmentID:      id,
		SourceText:     req.SourceText,
		TargetText:     req.TargetText,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Context:        req.Context,
		Event:          req.Event,
		Topic:          req.Topic,
		TranslatedBy:   req.TranslatedBy,
		ContentID:      req.ContentID,
		ProjectID:      req.ProjectID,
		Metadata:       req.Metadata,
		ChangeReason:   req.ChangeReason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSegmentResponse(seg))
}

// Delete handles DELETE /api/v1/segments/{id}.
func (h *SegmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteSegment(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
