package moderation

import (
	"context"
	"sync"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

var (
	_ termSource       = &termSourceMock{}
	_ settingsProvider = &settingsProviderMock{}
	_ reviewQueue      = &reviewQueueMock{}
)

type termSourceMock struct {
	ActiveTermsFunc func(ctx context.Context) ([]domain.Term, error)

	calls struct {
		ActiveTerms []struct {
			Ctx context.Context
		}
	}
	lockActiveTerms sync.RWMutex
}

func (mock *termSourceMock) ActiveTerms(ctx context.Context) ([]domain.Term, error) {
	if mock.ActiveTermsFunc == nil {
		panic("termSourceMock.ActiveTermsFunc: method is nil but termSource.ActiveTerms was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockActiveTerms.Lock()
	mock.calls.ActiveTerms = append(mock.calls.ActiveTerms, callInfo)
	mock.lockActiveTerms.Unlock()
	return mock.ActiveTermsFunc(ctx)
}

func (mock *termSourceMock) ActiveTermsCalls() []struct {
	Ctx context.Context
} {
	mock.lockActiveTerms.RLock()
	calls := mock.calls.ActiveTerms
	mock.lockActiveTerms.RUnlock()
	return calls
}

type settingsProviderMock struct {
	GetFunc func(ctx context.Context) (domain.Settings, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *settingsProviderMock) Get(ctx context.Context) (domain.Settings, error) {
	if mock.GetFunc == nil {
		panic("settingsProviderMock.GetFunc: method is nil but settingsProvider.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *settingsProviderMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

type reviewQueueMock struct {
	EnqueueFunc func(ctx context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error)

	calls struct {
		Enqueue []struct {
			Ctx  context.Context
			Item *domain.ReviewItem
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *reviewQueueMock) Enqueue(ctx context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error) {
	if mock.EnqueueFunc == nil {
		panic("reviewQueueMock.EnqueueFunc: method is nil but reviewQueue.Enqueue was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ReviewItem
	}{Ctx: ctx, Item: item}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, item)
}

func (mock *reviewQueueMock) EnqueueCalls() []struct {
	Ctx  context.Context
	Item *domain.ReviewItem
} {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
