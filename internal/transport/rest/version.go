package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/ledger"
)

type ledgerService interface {
	RecordVersion(ctx context.Context, input ledger.RecordVersionInput) (*domain.VersionRecord, error)
	ListVersions(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error)
}

// VersionHandler serves a segment's edit history.
type VersionHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewVersionHandler creates a VersionHandler.
func NewVersionHandler(svc ledgerService, logger *slog.Logger) *VersionHandler {
	return &VersionHandler{svc: svc, log: logger.With("handler", "version")}
}

type recordVersionRequest struct {
	SourceText   string  `json:"sourceText"   validate:"required,max=10000"`
	TargetText   string  `json:"targetText"   validate:"required,max=10000"`
	ChangeReason *string `json:"changeReason" validate:"omitempty,max=500"`
}

// Record handles POST /api/v1/segments/{id}/versions.
func (h *VersionHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := decodeJSON[recordVersionRequest](r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.RecordVersion(r.Context(), ledger.RecordVersionInput{
		SegmentID:    id,
		SourceText:   req.SourceText,
		TargetText:   req.TargetText,
		ChangeReason: req.ChangeReason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVersionResponse(rec))
}

// List handles GET /api/v1/segments/{id}/versions?order=asc|desc.
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	order := domain.SortOrder(newQueryReader(r).get("order"))

	records, err := h.svc.ListVersions(r.Context(), id, order)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]versionResponse, len(records))
	for i := range records {
		items[i] = toVersionResponse(&records[i])
	}
	writeJSON(w, http.StatusOK, versionListResponse{Items: items})
}
