package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/notejam/internal/domain"
	authsvc "github.com/heartmarshall/notejam/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	ChangePasswordFunc func(ctx context.Context, input authsvc.ChangePasswordInput) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
	RegisterFunc       func(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	SignInFunc         func(ctx context.Context, input authsvc.SignInInput) (*authsvc.SignInResult, error)
	SignOutFunc        func(ctx context.Context, rawToken string) (domain.Identity, error)

	calls struct {
		ChangePassword []struct {
			Ctx   context.Context
			Input authsvc.ChangePasswordInput
		}
		ForgotPassword []struct {
			Ctx   context.Context
			Email string
		}
		Register []struct {
			Ctx   context.Context
			Input authsvc.RegisterInput
		}
		SignIn []struct {
			Ctx   context.Context
			Input authsvc.SignInInput
		}
		SignOut []struct {
			Ctx      context.Context
			RawToken string
		}
	}
	lockChangePassword sync.RWMutex
	lockForgotPassword sync.RWMutex
	lockRegister       sync.RWMutex
	lockSignIn         sync.RWMutex
	lockSignOut        sync.RWMutex
}

func (mock *authServiceMock) ChangePassword(ctx context.Context, input authsvc.ChangePasswordInput) error {
	if mock.ChangePasswordFunc == nil {
		panic("authServiceMock.ChangePasswordFunc: method is nil but authService.ChangePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.ChangePasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockChangePassword.Lock()
	mock.calls.ChangePassword = append(mock.calls.ChangePassword, callInfo)
	mock.lockChangePassword.Unlock()
	return mock.ChangePasswordFunc(ctx, input)
}

func (mock *authServiceMock) ChangePasswordCalls() []struct {
	Ctx   context.Context
	Input authsvc.ChangePasswordInput
} {
	mock.lockChangePassword.RLock()
	calls := mock.calls.ChangePassword
	mock.lockChangePassword.RUnlock()
	return calls
}

func (mock *authServiceMock) ForgotPassword(ctx context.Context, email string) error {
	if mock.ForgotPasswordFunc == nil {
		panic("authServiceMock.ForgotPasswordFunc: method is nil but authService.ForgotPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockForgotPassword.Lock()
	mock.calls.ForgotPassword = append(mock.calls.ForgotPassword, callInfo)
	mock.lockForgotPassword.Unlock()
	return mock.ForgotPasswordFunc(ctx, email)
}

func (mock *authServiceMock) ForgotPasswordCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockForgotPassword.RLock()
	calls := mock.calls.ForgotPassword
	mock.lockForgotPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input authsvc.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.SignInResult, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.SignInInput
	}{Ctx: ctx, Input: input}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, input)
}

func (mock *authServiceMock) SignInCalls() []struct {
	Ctx   context.Context
	Input authsvc.SignInInput
} {
	mock.lockSignIn.RLock()
	calls := mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}

func (mock *authServiceMock) SignOut(ctx context.Context, rawToken string) (domain.Identity, error) {
	if mock.SignOutFunc == nil {
		panic("authServiceMock.SignOutFunc: method is nil but authService.SignOut was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx, rawToken)
}

func (mock *authServiceMock) SignOutCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}
