package dictionary

import (
	"context"
	"sync"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

var _ activityLogger = &activityLoggerMock{}

type activityLoggerMock struct {
	LogFunc func(ctx context.Context, activity domain.Activity) error

	calls struct {
		Log []struct {
			Ctx      context.Context
			Activity domain.Activity
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLoggerMock) Log(ctx context.Context, activity domain.Activity) error {
	if mock.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Activity domain.Activity
	}{Ctx: ctx, Activity: activity}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, activity)
}

func (mock *activityLoggerMock) LogCalls() []struct {
	Ctx      context.Context
	Activity domain.Activity
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
