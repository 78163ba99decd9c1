package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/notejam/internal/domain"
)

var _ padBatchRepo = &padBatchRepoMock{}

type padBatchRepoMock struct {
	GetOwnedByIDsFunc func(ctx context.Context, ownerID int64, ids []int64) ([]domain.Pad, error)

	calls struct {
		GetOwnedByIDs []struct {
			Ctx     context.Context
			OwnerID int64
			Ids     []int64
		}
	}
	lockGetOwnedByIDs sync.RWMutex
}

func (mock *padBatchRepoMock) GetOwnedByIDs(ctx context.Context, ownerID int64, ids []int64) ([]domain.Pad, error) {
	if mock.GetOwnedByIDsFunc == nil {
		panic("padBatchRepoMock.GetOwnedByIDsFunc: method is nil but padBatchRepo.GetOwnedByIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Ids     []int64
	}{Ctx: ctx, OwnerID: ownerID, Ids: ids}
	mock.lockGetOwnedByIDs.Lock()
	mock.calls.GetOwnedByIDs = append(mock.calls.GetOwnedByIDs, callInfo)
	mock.lockGetOwnedByIDs.Unlock()
	return mock.GetOwnedByIDsFunc(ctx, ownerID, ids)
}

func (mock *padBatchRepoMock) GetOwnedByIDsCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Ids     []int64
} {
	mock.lockGetOwnedByIDs.RLock()
	calls := mock.calls.GetOwnedByIDs
	mock.lockGetOwnedByIDs.RUnlock()
	return calls
}
