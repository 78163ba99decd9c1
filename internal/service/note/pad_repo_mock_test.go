package note

import (
	"context"
	"sync"

	"github.com/heartmarshall/notejam/internal/domain"
)

var _ padRepo = &padRepoMock{}

type padRepoMock struct {
	GetOwnedFunc func(ctx context.Context, id int64, ownerID int64) (*domain.Pad, error)

	calls struct {
		GetOwned []struct {
			Ctx     context.Context
			Id      int64
			OwnerID int64
		}
	}
	lockGetOwned sync.RWMutex
}

func (mock *padRepoMock) GetOwned(ctx context.Context, id int64, ownerID int64) (*domain.Pad, error) {
	if mock.GetOwnedFunc == nil {
		panic("padRepoMock.GetOwnedFunc: method is nil but padRepo.GetOwned was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      int64
		OwnerID int64
	}{Ctx: ctx, Id: id, OwnerID: ownerID}
	mock.lockGetOwned.Lock()
	mock.calls.GetOwned = append(mock.calls.GetOwned, callInfo)
	mock.lockGetOwned.Unlock()
	return mock.GetOwnedFunc(ctx, id, ownerID)
}

func (mock *padRepoMock) GetOwnedCalls() []struct {
	Ctx     context.Context
	Id      int64
	OwnerID int64
} {
	mock.lockGetOwned.RLock()
	calls := mock.calls.GetOwned
	mock.lockGetOwned.RUnlock()
	return calls
}
