package auth

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/notejam/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc     func(ctx context.Context, tokenHash string, userID int64) (*domain.Session, error)
	DeleteFunc     func(ctx context.Context, tokenHash string) error
	DeleteIdleFunc func(ctx context.Context, cutoff time.Time) (int, error)
	TouchFunc      func(ctx context.Context, tokenHash string, activeSince time.Time) (*domain.Session, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			TokenHash string
			UserID    int64
		}
		Delete []struct {
			Ctx       context.Context
			TokenHash string
		}
		DeleteIdle []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		Touch []struct {
			Ctx         context.Context
			TokenHash   string
			ActiveSince time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockDeleteIdle sync.RWMutex
	lockTouch      sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, tokenHash string, userID int64) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
		UserID    int64
	}{Ctx: ctx, TokenHash: tokenHash, UserID: userID}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tokenHash, userID)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	TokenHash string
	UserID    int64
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, tokenHash string) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteIdle(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.DeleteIdleFunc == nil {
		panic("sessionRepoMock.DeleteIdleFunc: method is nil but sessionRepo.DeleteIdle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockDeleteIdle.Lock()
	mock.calls.DeleteIdle = append(mock.calls.DeleteIdle, callInfo)
	mock.lockDeleteIdle.Unlock()
	return mock.DeleteIdleFunc(ctx, cutoff)
}

func (mock *sessionRepoMock) DeleteIdleCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockDeleteIdle.RLock()
	calls := mock.calls.DeleteIdle
	mock.lockDeleteIdle.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Touch(ctx context.Context, tokenHash string, activeSince time.Time) (*domain.Session, error) {
	if mock.TouchFunc == nil {
		panic("sessionRepoMock.TouchFunc: method is nil but sessionRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TokenHash   string
		ActiveSince time.Time
	}{Ctx: ctx, TokenHash: tokenHash, ActiveSince: activeSince}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, tokenHash, activeSince)
}

func (mock *sessionRepoMock) TouchCalls() []struct {
	Ctx         context.Context
	TokenHash   string
	ActiveSince time.Time
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}
