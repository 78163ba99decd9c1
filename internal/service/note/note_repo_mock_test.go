package note

import (
	"context"
	"sync"

	"github.com/heartmarshall/notejam/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	CreateFunc   func(ctx context.Context, ownerID int64, padID *int64, name string, text string) (*domain.Note, error)
	DeleteFunc   func(ctx context.Context, id int64, ownerID int64) error
	GetOwnedFunc func(ctx context.Context, id int64, ownerID int64) (*domain.Note, error)
	ListFunc     func(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error)
	UpdateFunc   func(ctx context.Context, id int64, ownerID int64, name string, text string) (*domain.Note, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID int64
			PadID   *int64
			Name    string
			Text    string
		}
		Delete []struct {
			Ctx     context.Context
			Id      int64
			OwnerID int64
		}
		GetOwned []struct {
			Ctx     context.Context
			Id      int64
			OwnerID int64
		}
		List []struct {
			Ctx context.Context
			F   domain.NoteFilter
		}
		Update []struct {
			Ctx     context.Context
			Id      int64
			OwnerID int64
			Name    string
			Text    string
		}
	}
	lockCreate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockGetOwned sync.RWMutex
	lockList     sync.RWMutex
	lockUpdate   sync.RWMutex
}

func (mock *noteRepoMock) Create(ctx context.Context, ownerID int64, padID *int64, name string, text string) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		PadID   *int64
		Name    string
		Text    string
	}{Ctx: ctx, OwnerID: ownerID, PadID: padID, Name: name, Text: text}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, padID, name, text)
}

func (mock *noteRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	PadID   *int64
	Name    string
	Text    string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Delete(ctx context.Context, id int64, ownerID int64) error {
	if mock.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      int64
		OwnerID int64
	}{Ctx: ctx, Id: id, OwnerID: ownerID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, ownerID)
}

func (mock *noteRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	Id      int64
	OwnerID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *noteRepoMock) GetOwned(ctx context.Context, id int64, ownerID int64) (*domain.Note, error) {
	if mock.GetOwnedFunc == nil {
		panic("noteRepoMock.GetOwnedFunc: method is nil but noteRepo.GetOwned was just called")
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

func (mock *noteRepoMock) GetOwnedCalls() []struct {
	Ctx     context.Context
	Id      int64
	OwnerID int64
} {
	mock.lockGetOwned.RLock()
	calls := mock.calls.GetOwned
	mock.lockGetOwned.RUnlock()
	return calls
}

func (mock *noteRepoMock) List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error) {
	if mock.ListFunc == nil {
		panic("noteRepoMock.ListFunc: method is nil but noteRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.NoteFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *noteRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.NoteFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *noteRepoMock) Update(ctx context.Context, id int64, ownerID int64, name string, text string) (*domain.Note, error) {
	if mock.UpdateFunc == nil {
		panic("noteRepoMock.UpdateFunc: method is nil but noteRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      int64
		OwnerID int64
		Name    string
		Text    string
	}{Ctx: ctx, Id: id, OwnerID: ownerID, Name: name, Text: text}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, ownerID, name, text)
}

func (mock *noteRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	Id      int64
	OwnerID int64
	Name    string
	Text    string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
