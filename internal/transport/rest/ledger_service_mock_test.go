package rest

import (
	"context"
	"sync"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/ledger"
	"github.com/google/uuid"
)

var _ ledgerService = &ledgerServiceMock{}

type ledgerServiceMock struct {
	ListVersionsFunc  func(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error)
	RecordVersionFunc func(ctx context.Context, input ledger.RecordVersionInput) (*domain.VersionRecord, error)

	calls struct {
		ListVersions []struct {
			Ctx       context.Context
			SegmentID uuid.UUID
			Order     domain.SortOrder
		}
		RecordVersion []struct {
			Ctx   context.Context
			Input ledger.RecordVersionInput
		}
	}
	lockListVersions  sync.RWMutex
	lockRecordVersion sync.RWMutex
}

func (mock *ledgerServiceMock) ListVersions(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error) {
	if mock.ListVersionsFunc == nil {
		panic("ledgerServiceMock.ListVersionsFunc: method is nil but ledgerService.ListVersions was just called")
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
	mock.lockListVersions.Lock()
	mock.calls.ListVersions = append(mock.calls.ListVersions, callInfo)
	mock.lockListVersions.Unlock()
	return mock.ListVersionsFunc(ctx, segmentID, order)
}

func (mock *ledgerServiceMock) ListVersionsCalls() []struct {
	Ctx       context.Context
	SegmentID uuid.UUID
	Order     domain.SortOrder
} {
	mock.lockListVersions.RLock()
	calls := mock.calls.ListVersions
	mock.lockListVersions.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) RecordVersion(ctx context.Context, input ledger.RecordVersionInput) (*domain.VersionRecord, error) {
	if mock.RecordVersionFunc == nil {
		panic("ledgerServiceMock.RecordVersionFunc: method is nil but ledgerService.RecordVersion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.RecordVersionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRecordVersion.Lock()
	mock.calls.RecordVersion = append(mock.calls.RecordVersion, callInfo)
	mock.lockRecordVersion.Unlock()
	return mock.RecordVersionFunc(ctx, input)
}

func (mock *ledgerServiceMock) RecordVersionCalls() []struct {
	Ctx   context.Context
	Input ledger.RecordVersionInput
} {
	mock.lockRecordVersion.RLock()
	calls := mock.calls.RecordVersion
	mock.lockRecordVersion.RUnlock()
	return calls
}
