package importer

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/segment"
)

var _ segmentCreator = &segmentCreatorMock{}

type segmentCreatorMock struct {
	CreateSegmentFunc func(ctx context.Context, input segment.CreateSegmentInput) (*domain.Segment, error)

	calls struct {
		CreateSegment []struct {
			Ctx   context.Context
			Input segment.CreateSegmentInput
		}
	}
	lockCreateSegment sync.RWMutex
}

func (mock *segmentCreatorMock) CreateSegment(ctx context.Context, input segment.CreateSegmentInput) (*domain.Segment, error) {
	if mock.CreateSegmentFunc == nil {
		panic("segmentCreatorMock.CreateSegmentFunc: method is nil but segmentCreator.CreateSegment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input segment.CreateSegmentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateSegment.Lock()
	mock.calls.CreateSegment = append(mock.calls.CreateSegment, callInfo)
	mock.lockCreateSegment.Unlock()
	return mock.CreateSegmentFunc(ctx, input)
}

func (mock *segmentCreatorMock) CreateSegmentCalls() []struct {
	Ctx   context.Context
	Input segment.CreateSegmentInput
} {
	mock.lockCreateSegment.RLock()
	calls := mock.calls.CreateSegment
	mock.lockCreateSegment.RUnlock()
	return calls
}
