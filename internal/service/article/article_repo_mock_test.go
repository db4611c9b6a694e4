package article

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetFunc          func(ctx context.Context, id uuid.UUID) (domain.Article, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.Article, error)
	SoftDeleteFunc   func(ctx context.Context, id uuid.UUID) (domain.Article, error)
	SwapOwnerFunc    func(ctx context.Context, id uuid.UUID, expected uuid.UUID, next uuid.UUID) (domain.Article, error)
	SwapStatusFunc   func(ctx context.Context, id uuid.UUID, expected domain.ArticleStatus, next domain.ArticleStatus) (domain.Article, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SoftDelete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SwapOwner []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Expected uuid.UUID
			Next     uuid.UUID
		}
		SwapStatus []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Expected domain.ArticleStatus
			Next     domain.ArticleStatus
		}
	}
	lockGet          sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockSoftDelete   sync.RWMutex
	lockSwapOwner    sync.RWMutex
	lockSwapStatus   sync.RWMutex
}

func (mock *articleRepoMock) Get(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	if mock.GetFunc == nil {
		panic("articleRepoMock.GetFunc: method is nil but articleRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *articleRepoMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *articleRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	if mock.GetForUpdateFunc == nil {
		panic("articleRepoMock.GetForUpdateFunc: method is nil but articleRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *articleRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *articleRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	if mock.SoftDeleteFunc == nil {
		panic("articleRepoMock.SoftDeleteFunc: method is nil but articleRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *articleRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *articleRepoMock) SwapOwner(ctx context.Context, id uuid.UUID, expected uuid.UUID, next uuid.UUID) (domain.Article, error) {
	if mock.SwapOwnerFunc == nil {
		panic("articleRepoMock.SwapOwnerFunc: method is nil but articleRepo.SwapOwner was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Expected uuid.UUID
		Next     uuid.UUID
	}{Ctx: ctx, Id: id, Expected: expected, Next: next}
	mock.lockSwapOwner.Lock()
	mock.calls.SwapOwner = append(mock.calls.SwapOwner, callInfo)
	mock.lockSwapOwner.Unlock()
	return mock.SwapOwnerFunc(ctx, id, expected, next)
}

func (mock *articleRepoMock) SwapOwnerCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Expected uuid.UUID
	Next     uuid.UUID
} {
	mock.lockSwapOwner.RLock()
	calls := mock.calls.SwapOwner
	mock.lockSwapOwner.RUnlock()
	return calls
}

func (mock *articleRepoMock) SwapStatus(ctx context.Context, id uuid.UUID, expected domain.ArticleStatus, next domain.ArticleStatus) (domain.Article, error) {
	if mock.SwapStatusFunc == nil {
		panic("articleRepoMock.SwapStatusFunc: method is nil but articleRepo.SwapStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Expected domain.ArticleStatus
		Next     domain.ArticleStatus
	}{Ctx: ctx, Id: id, Expected: expected, Next: next}
	mock.lockSwapStatus.Lock()
	mock.calls.SwapStatus = append(mock.calls.SwapStatus, callInfo)
	mock.lockSwapStatus.Unlock()
	return mock.SwapStatusFunc(ctx, id, expected, next)
}

func (mock *articleRepoMock) SwapStatusCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Expected domain.ArticleStatus
	Next     domain.ArticleStatus
} {
	mock.lockSwapStatus.RLock()
	calls := mock.calls.SwapStatus
	mock.lockSwapStatus.RUnlock()
	return calls
}
