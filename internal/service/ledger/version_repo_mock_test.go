package ledger

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/google/uuid"
)

var _ versionRepo = &versionRepoMock{}

type versionRepoMock struct {
	AppendFunc        func(ctx context.Context, rec *domain.VersionRecord) (*domain.VersionRecord, error)
	ListBySegmentFunc func(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Rec *domain.VersionRecord
		}
		ListBySegment []struct {
			Ctx       context.Context
			SegmentID uuid.UUID
			Order     domain.SortOrder
		}
	}
	lockAppend        sync.RWMutex
	lockListBySegment sync.RWMutex
}

func (mock *versionRepoMock) Append(ctx context.Context, rec *domain.VersionRecord) (*domain.VersionRecord, error) {
	if mock.AppendFunc == nil {
		panic("versionRepoMock.AppendFunc: method is nil but versionRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.VersionRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *versionRepoMock) AppendCalls() []struct {
	Ctx context.Context
	Rec *domain.VersionRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *versionRepoMock) ListBySegment(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error) {
	if mock.ListBySegmentFunc == nil {
		panic("versionRepoMock.ListBySegmentFunc: method is nil but versionRepo.ListBySegment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SegmentID uuid.UUID
		Order     domain.SortOrder
	}{
		Ctx:       ctx,
		SegmentID: segmentID,
		Order:     order,
	}
	mock.lockListBySegment.Lock()
	mock.calls.ListBySegment = append(mock.calls.ListBySegment, callInfo)
	mock.lockListBySegment.Unlock()
	return mock.ListBySegmentFunc(ctx, segmentID, order)
}

func (mock *versionRepoMock) ListBySegmentCalls() []struct {
	Ctx       context.Context
	SegmentID uuid.UUID
	Order     domain.SortOrder
} {
	mock.lockListBySegment.RLock()
	calls := mock.calls.ListBySegment
	mock.lockListBySegment.RUnlock()
	return calls
}
