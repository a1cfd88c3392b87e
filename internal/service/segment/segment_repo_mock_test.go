package segment

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/google/uuid"
)

var _ segmentRepo = &segmentRepoMock{}

type segmentRepoMock struct {
	CountFunc      func(ctx context.Context, filter domain.SegmentFilter) (int, error)
	CreateFunc     func(ctx context.Context, seg *domain.Segment) (*domain.Segment, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	ListFunc       func(ctx context.Context, filter domain.SegmentFilter) ([]domain.Segment, error)
	LockByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) error
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.SegmentUpdateParams) (*domain.Segment, error)

	calls struct {
		Count []struct {
			Ctx    context.Context
			Filter domain.SegmentFilter
		}
		Create []struct {
			Ctx context.Context
			Seg *domain.Segment
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SegmentFilter
		}
		LockByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.SegmentUpdateParams
		}
	}
	lockCount      sync.RWMutex
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockLockByID   sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *segmentRepoMock) Count(ctx context.Context, filter domain.SegmentFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("segmentRepoMock.CountFunc: method is nil but segmentRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SegmentFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *segmentRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.SegmentFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *segmentRepoMock) Create(ctx context.Context, seg *domain.Segment) (*domain.Segment, error) {
	if mock.CreateFunc == nil {
		panic("segmentRepoMock.CreateFunc: method is nil but segmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Seg *domain.Segment
	}{
		Ctx: ctx,
		Seg: seg,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, seg)
}

func (mock *segmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Seg *domain.Segment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *segmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	if mock.GetByIDFunc == nil {
		panic("segmentRepoMock.GetByIDFunc: method is nil but segmentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *segmentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *segmentRepoMock) List(ctx context.Context, filter domain.SegmentFilter) ([]domain.Segment, error) {
	if mock.ListFunc == nil {
		panic("segmentRepoMock.ListFunc: method is nil but segmentRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SegmentFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *segmentRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SegmentFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *segmentRepoMock) LockByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	if mock.LockByIDFunc == nil {
		panic("segmentRepoMock.LockByIDFunc: method is nil but segmentRepo.LockByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLockByID.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, callInfo)
	mock.lockLockByID.Unlock()
	return mock.LockByIDFunc(ctx, id)
}

func (mock *segmentRepoMock) LockByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockByID.RLock()
	calls := mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}

func (mock *segmentRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("segmentRepoMock.SoftDeleteFunc: method is nil but segmentRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *segmentRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *segmentRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.SegmentUpdateParams) (*domain.Segment, error) {
	if mock.UpdateFunc == nil {
		panic("segmentRepoMock.UpdateFunc: method is nil but segmentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.SegmentUpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *segmentRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.SegmentUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
