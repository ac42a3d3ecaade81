package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc       func(ctx context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error)
	ListFunc         func(ctx context.Context, filter domain.ReviewFilter) ([]domain.ReviewItem, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, from []domain.ReviewStatus, to domain.ReviewStatus, at time.Time) (*domain.ReviewItem, error)
	CountsFunc       func(ctx context.Context) (domain.ReviewCounts, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.ReviewItem
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ReviewFilter
		}
		UpdateStatus []struct {
			Ctx  context.Context
			ID   uuid.UUID
			From []domain.ReviewStatus
			To   domain.ReviewStatus
			At   time.Time
		}
		Counts []struct {
			Ctx context.Context
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockCounts       sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ReviewItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.ReviewItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	if mock.GetByIDFunc == nil {
		panic("reviewRepoMock.GetByIDFunc: method is nil but reviewRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reviewRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reviewRepoMock) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.ReviewItem, error) {
	if mock.ListFunc == nil {
		panic("reviewRepoMock.ListFunc: method is nil but reviewRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReviewFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *reviewRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ReviewFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reviewRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.ReviewStatus, to domain.ReviewStatus, at time.Time) (*domain.ReviewItem, error) {
	if mock.UpdateStatusFunc == nil {
		panic("reviewRepoMock.UpdateStatusFunc: method is nil but reviewRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		From []domain.ReviewStatus
		To   domain.ReviewStatus
		At   time.Time
	}{Ctx: ctx, ID: id, From: from, To: to, At: at}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, from, to, at)
}

func (mock *reviewRepoMock) UpdateStatusCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	From []domain.ReviewStatus
	To   domain.ReviewStatus
	At   time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Counts(ctx context.Context) (domain.ReviewCounts, error) {
	if mock.CountsFunc == nil {
		panic("reviewRepoMock.CountsFunc: method is nil but reviewRepo.Counts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx)
}

func (mock *reviewRepoMock) CountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockCounts.RLock()
	calls := mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}
