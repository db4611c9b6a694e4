package ownership

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.Article, error)
	SwapOwnerFunc    func(ctx context.Context, id uuid.UUID, expected uuid.UUID, next uuid.UUID) (domain.Article, error)

	calls struct {
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SwapOwner []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Expected uuid.UUID
			Next     uuid.UUID
		}
	}
	lockGetForUpdate sync.RWMutex
	lockSwapOwner    sync.RWMutex
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
