package feedback

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/google/uuid"
)

var _ segmentRepo = &segmentRepoMock{}

type segmentRepoMock struct {
	AddRatingFunc      func(ctx context.Context, id uuid.UUID, rating int, windowMean *float64) (*domain.Segment, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	IncrementUsageFunc func(ctx context.Context, id uuid.UUID) (*domain.Segment, error)
	LockByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Segment, error)

	calls struct {
		AddRating []struct {
			Ctx        context.Context
			ID         uuid.UUID
			Rating     int
			WindowMean *float64
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IncrementUsage []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LockByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockAddRating      sync.RWMutex
	lockGetByID        sync.RWMutex
	lockIncrementUsage sync.RWMutex
	lockLockByID       sync.RWMutex
}

func (mock *segmentRepoMock) AddRating(ctx context.Context, id uuid.UUID, rating int, windowMean *float64) (*domain.Segment, error) {
	if mock.AddRatingFunc == nil {
		panic("segmentRepoMock.AddRatingFunc: method is nil but segmentRepo.AddRating was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		Rating     int
		WindowMean *float64
	}{
		Ctx:        ctx,
		ID:         id,
		Rating:     rating,
		WindowMean: windowMean,
	}
	mock.lockAddRating.Lock()
	mock.calls.AddRating = append(mock.calls.AddRating, callInfo)
	mock.lockAddRating.Unlock()
	return mock.AddRatingFunc(ctx, id, rating, windowMean)
}

func (mock *segmentRepoMock) AddRatingCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	Rating     int
	WindowMean *float64
} {
	mock.lockAddRating.RLock()
	calls := mock.calls.AddRating
	mock.lockAddRating.RUnlock()
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

func (mock *segmentRepoMock) IncrementUsage(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	if mock.IncrementUsageFunc == nil {
		panic("segmentRepoMock.IncrementUsageFunc: method is nil but segmentRepo.IncrementUsage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockIncrementUsage.Lock()
	mock.calls.IncrementUsage = append(mock.calls.IncrementUsage, callInfo)
	mock.lockIncrementUsage.Unlock()
	return mock.IncrementUsageFunc(ctx, id)
}

func (mock *segmentRepoMock) IncrementUsageCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementUsage.RLock()
	calls := mock.calls.IncrementUsage
	mock.lockIncrementUsage.RUnlock()
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
