package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/service/access"
	padsvc "github.com/heartmarshall/notejam/internal/service/pad"
)

var _ padService = &padServiceMock{}

type padServiceMock struct {
	CreateFunc func(ctx context.Context, ownerID int64, input padsvc.PadInput) (*domain.Pad, error)
	DeleteFunc func(ctx context.Context, owned access.Owned[domain.Pad]) error
	ListFunc   func(ctx context.Context, ownerID int64) ([]domain.Pad, error)
	LoadFunc   func(ctx context.Context, id int64, ownerID int64) (access.Owned[domain.Pad], error)
	UpdateFunc func(ctx context.Context, owned access.Owned[domain.Pad], input padsvc.PadInput) (*domain.Pad, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID int64
			Input   padsvc.PadInput
		}
		Delete []struct {
			Ctx   context.Context
			Owned access.Owned[domain.Pad]
		}
		List []struct {
			Ctx     context.Context
			OwnerID int64
		}
		Load []struct {
			Ctx     context.Context
			Id      int64
			OwnerID int64
		}
		Update []struct {
			Ctx   context.Context
			Owned access.Owned[domain.Pad]
			Input padsvc.PadInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockList   sync.RWMutex
	lockLoad   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *padServiceMock) Create(ctx context.Context, ownerID int64, input padsvc.PadInput) (*domain.Pad, error) {
	if mock.CreateFunc == nil {
		panic("padServiceMock.CreateFunc: method is nil but padService.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Input   padsvc.PadInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, input)
}

func (mock *padServiceMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Input   padsvc.PadInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *padServiceMock) Delete(ctx context.Context, owned access.Owned[domain.Pad]) error {
	if mock.DeleteFunc == nil {
		panic("padServiceMock.DeleteFunc: method is nil but padService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owned access.Owned[domain.Pad]
	}{Ctx: ctx, Owned: owned}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, owned)
}

func (mock *padServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Owned access.Owned[domain.Pad]
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *padServiceMock) List(ctx context.Context, ownerID int64) ([]domain.Pad, error) {
	if mock.ListFunc == nil {
		panic("padServiceMock.ListFunc: method is nil but padService.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *padServiceMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID int64
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *padServiceMock) Load(ctx context.Context, id int64, ownerID int64) (access.Owned[domain.Pad], error) {
	if mock.LoadFunc == nil {
		panic("padServiceMock.LoadFunc: method is nil but padService.Load was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      int64
		OwnerID int64
	}{Ctx: ctx, Id: id, OwnerID: ownerID}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, id, ownerID)
}

func (mock *padServiceMock) LoadCalls() []struct {
	Ctx     context.Context
	Id      int64
	OwnerID int64
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *padServiceMock) Update(ctx context.Context, owned access.Owned[domain.Pad], input padsvc.PadInput) (*domain.Pad, error) {
	if mock.UpdateFunc == nil {
		panic("padServiceMock.UpdateFunc: method is nil but padService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owned access.Owned[domain.Pad]
		Input padsvc.PadInput
	}{Ctx: ctx, Owned: owned, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, owned, input)
}

func (mock *padServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Owned access.Owned[domain.Pad]
	Input padsvc.PadInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
