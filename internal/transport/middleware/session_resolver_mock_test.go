package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/notejam/internal/domain"
)

var _ sessionResolver = &sessionResolverMock{}

type sessionResolverMock struct {
	ResolveFunc func(ctx context.Context, rawToken string) (domain.Identity, error)

	calls struct {
		Resolve []struct {
			Ctx      context.Context
			RawToken string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *sessionResolverMock) Resolve(ctx context.Context, rawToken string) (domain.Identity, error) {
	if mock.ResolveFunc == nil {
		panic("sessionResolverMock.ResolveFunc: method is nil but sessionResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, rawToken)
}

func (mock *sessionResolverMock) ResolveCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
