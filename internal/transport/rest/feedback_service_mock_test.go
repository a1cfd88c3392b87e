package rest

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/feedback"
	"github.com/google/uuid"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	ListFunc    func(ctx context.Context, input feedback.ListInput) ([]domain.FeedbackEvent, error)
	RecordFunc  func(ctx context.Context, input feedback.RecordInput) (*feedback.RecordResult, error)
	SummaryFunc func(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input feedback.ListInput
		}
		Record []struct {
			Ctx   context.Context
			Input feedback.RecordInput
		}
		Summary []struct {
			Ctx       context.Context
			SegmentID uuid.UUID
		}
	}
	lockList    sync.RWMutex
	lockRecord  sync.RWMutex
	lockSummary sync.RWMutex
}

func (mock *feedbackServiceMock) List(ctx context.Context, input feedback.ListInput) ([]domain.FeedbackEvent, error) {
	if mock.ListFunc == nil {
		panic("feedbackServiceMock.ListFunc: method is nil but feedbackService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *feedbackServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input feedback.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Record(ctx context.Context, input feedback.RecordInput) (*feedback.RecordResult, error) {
	if mock.RecordFunc == nil {
		panic("feedbackServiceMock.RecordFunc: method is nil but feedbackService.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.RecordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *feedbackServiceMock) RecordCalls() []struct {
	Ctx   context.Context
	Input feedback.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Summary(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error) {
	if mock.SummaryFunc == nil {
		panic("feedbackServiceMock.SummaryFunc: method is nil but feedbackService.Summary was just called")
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

func (mock *feedbackServiceMock) SummaryCalls() []struct {
	Ctx       context.Context
	SegmentID uuid.UUID
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
