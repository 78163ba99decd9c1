package auth

import (
	"sync"

	"github.com/heartmarshall/notejam/internal/mail"
)

var _ mailQueue = &mailQueueMock{}

type mailQueueMock struct {
	EnqueueFunc func(msg mail.Message) bool

	calls struct {
		Enqueue []struct{ Msg mail.Message }
	}
	lockEnqueue sync.RWMutex
}

func (mock *mailQueueMock) Enqueue(msg mail.Message) bool {
	if mock.EnqueueFunc == nil {
		panic("mailQueueMock.EnqueueFunc: method is nil but mailQueue.Enqueue was just called")
	}
	callInfo := struct{ Msg mail.Message }{Msg: msg}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(msg)
}

func (mock *mailQueueMock) EnqueueCalls() []struct{ Msg mail.Message } {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
