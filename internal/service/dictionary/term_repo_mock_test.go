package dictionary

import (
	"context"
	"sync"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	ListFunc    func(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Term, error)
	CreateFunc  func(ctx context.Context, term *domain.Term) (*domain.Term, error)
	UpdateFunc  func(ctx context.Context, id int64, patch domain.TermPatch) (*domain.Term, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	CountFunc   func(ctx context.Context) (int, error)
	ImportFunc  func(ctx context.Context, terms []domain.Term) (int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.TermFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx  context.Context
			Term *domain.Term
		}
		Update []struct {
			Ctx   context.Context
			ID    int64
			Patch domain.TermPatch
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Count []struct {
			Ctx context.Context
		}
		Import []struct {
			Ctx   context.Context
			Terms []domain.Term
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockCount   sync.RWMutex
	lockImport  sync.RWMutex
}

func (mock *termRepoMock) List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	if mock.ListFunc == nil {
		panic("termRepoMock.ListFunc: method is nil but termRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TermFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *termRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TermFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *termRepoMock) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	if mock.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc: method is nil but termRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *termRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *termRepoMock) Create(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	if mock.CreateFunc == nil {
		panic("termRepoMock.CreateFunc: method is nil but termRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term *domain.Term
	}{Ctx: ctx, Term: term}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, term)
}

func (mock *termRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Term *domain.Term
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *termRepoMock) Update(ctx context.Context, id int64, patch domain.TermPatch) (*domain.Term, error) {
	if mock.UpdateFunc == nil {
		panic("termRepoMock.UpdateFunc: method is nil but termRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Patch domain.TermPatch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *termRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    int64
	Patch domain.TermPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *termRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("termRepoMock.DeleteFunc: method is nil but termRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *termRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *termRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("termRepoMock.CountFunc: method is nil but termRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *termRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *termRepoMock) Import(ctx context.Context, terms []domain.Term) (int, error) {
	if mock.ImportFunc == nil {
		panic("termRepoMock.ImportFunc: method is nil but termRepo.Import was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Terms []domain.Term
	}{Ctx: ctx, Terms: terms}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, terms)
}

func (mock *termRepoMock) ImportCalls() []struct {
	Ctx   context.Context
	Terms []domain.Term
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}
