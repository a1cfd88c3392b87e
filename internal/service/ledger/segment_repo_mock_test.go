package ledger

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/google/uuid"
)

var _ segmentRepo = &segmentRepoMock{}

type segmentRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	LockByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Segment, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LockByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockLockByID sync.RWMutex
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
