package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

//go:generate moq -out segment_service_mock_test.go -pkg rest . segmentService
//go:generate moq -out match_service_mock_test.go -pkg rest . matchService
//go:generate moq -out feedback_service_mock_test.go -pkg rest . feedbackService
//go:generate moq -out ledger_service_mock_test.go -pkg rest . ledgerService

func ptr[T any](v T) *T { return &v }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServices struct {
	segments *segmentServiceMock
	matches  *matchServiceMock
	feedback *feedbackServiceMock
	ledger   *ledgerServiceMock
}

func newTestServices() testServices {
	return testServices{
		segments: &segmentServiceMock{},
		matches:  &matchServiceMock{},
		feedback: &feedbackServiceMock{},
		ledger:   &ledgerServiceMock{},
	}
}

func (s testServices) mux(g Guards) *http.ServeMux {
	log := testLogger()
	return Routes(Handlers{
		Health:   NewHealthHandler("test", nil),
		Segments: NewSegmentHandler(s.segments, log),
		Matches:  NewMatchHandler(s.matches, log),
		Feedback: NewFeedbackHandler(s.feedback, log),
		Versions: NewVersionHandler(s.ledger, log),
	}, g)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func fieldNames(body errorBody) []string {
	names := make([]string, len(body.Fields))
	for i, f := range body.Fields {
		names[i] = f.Field
	}
	return names
}

func sampleSegment() *domain.Segment {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Segment{
		ID:             uuid.New(),
		SourceText:     "하나님의 은혜",
		TargetText:     "God's grace",
		SourceLanguage: "ko",
		TargetLanguage: "en",
		Event:          ptr("Sunday Service"),
		Topic:          ptr("Grace"),
		UsageCount:     3,
		AvgRating:      ptr(4.5),
		RatingCount:    2,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
