package feedback

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/google/uuid"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc           func(ctx context.Context, ev *domain.FeedbackEvent) (*domain.FeedbackEvent, error)
	ListBySegmentFunc    func(ctx context.Context, segmentID uuid.UUID, limit int, offset int) ([]domain.FeedbackEvent, error)
	RecentRatingMeanFunc func(ctx context.Context, segmentID uuid.UUID, window int) (*float64, error)
	SummaryFunc          func(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ev  *domain.FeedbackEvent
		}
		ListBySegment []struct {
			Ctx       context.Context
			SegmentID uuid.UUID
			Limit     int
			Offset    int
		}
		RecentRatingMean []struct {
			Ctx       context.Context
			SegmentID uuid.UUID
			Window    int
		}
		Summary []struct {
			Ctx       context.Context
			SegmentID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockListBySegment    sync.RWMutex
	lockRecentRatingMean sync.RWMutex
	lockSummary          sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, ev *domain.FeedbackEvent) (*domain.FeedbackEvent, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  *domain.FeedbackEvent
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ev  *domain.FeedbackEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) ListBySegment(ctx context.Context, segmentID uuid.UUID, limit int, offset int) ([]domain.FeedbackEvent, error) {
	if mock.ListBySegmentFunc == nil {
		panic("feedbackRepoMock.ListBySegmentFunc: method is nil but feedbackRepo.ListBySegment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SegmentID uuid.UUID
		Limit     int
		Offset    int
	}{
		Ctx:       ctx,
		SegmentID: segmentID,
		Limit:     limit,
		Offset:    offset,
	}
	mock.lockListBySegment.Lock()
	mock.calls.ListBySegment = append(mock.calls.ListBySegment, callInfo)
	mock.lockListBySegment.Unlock()
	return mock.ListBySegmentFunc(ctx, segmentID, limit, offset)
}

func (mock *feedbackRepoMock) ListBySegmentCalls() []struct {
	Ctx       context.Context
	SegmentID uuid.UUID
	Limit     int
	Offset    int
} {
	mock.lockListBySegment.RLock()
	calls := mock.calls.ListBySegment
	mock.lockListBySegment.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) RecentRatingMean(ctx context.Context, segmentID uuid.UUID, window int) (*float64, error) {
	if mock.RecentRatingMeanFunc == nil {
		panic("feedbackRepoMock.RecentRatingMeanFunc: method is nil but feedbackRepo.RecentRatingMean was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SegmentID uuid.UUID
		Window    int
	}{
		Ctx:       ctx,
		SegmentID: segmentID,
		Window:    window,
	}
	mock.lockRecentRatingMean.Lock()
	mock.calls.RecentRatingMean = append(mock.calls.RecentRatingMean, callInfo)
	mock.lockRecentRatingMean.Unlock()
	return mock.RecentRatingMeanFunc(ctx, segmentID, window)
}

func (mock *feedbackRepoMock) RecentRatingMeanCalls() []struct {
	Ctx       context.Context
	SegmentID uuid.UUID
	Window    int
} {
	mock.lockRecentRatingMean.RLock()
	calls := mock.calls.RecentRatingMean
	mock.lockRecentRatingMean.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Summary(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error) {
	if mock.SummaryFunc == nil {
		panic("feedbackRepoMock.SummaryFunc: method is nil but feedbackRepo.Summary was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SegmentID uuid.UUID
	}{
		Ctx:       ctx,
		SegmentID: segmentID,
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, segmentID)
}

func (mock *feedbackRepoMock) SummaryCalls() []struct {
	Ctx       context.Context
	SegmentID uuid.UUID
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
