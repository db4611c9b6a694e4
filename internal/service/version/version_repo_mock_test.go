package version

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ versionRepo = &versionRepoMock{}

type versionRepoMock struct {
	AppendFunc func(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error)
	GetFunc    func(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error)
	ListFunc   func(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			V   domain.ArticleVersion
		}
		Get []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
			Number    int
		}
		List []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
			Order     domain.VersionOrder
		}
	}
	lockAppend sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *versionRepoMock) Append(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error) {
	if mock.AppendFunc == nil {
		panic("versionRepoMock.AppendFunc: method is nil but versionRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   domain.ArticleVersion
	}{Ctx: ctx, V: v}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, v)
}

func (mock *versionRepoMock) AppendCalls() []struct {
	Ctx context.Context
	V   domain.ArticleVersion
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *versionRepoMock) Get(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error) {
	if mock.GetFunc == nil {
		panic("versionRepoMock.GetFunc: method is nil but versionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		Number    int
	}{Ctx: ctx, ArticleID: articleID, Number: number}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, articleID, number)
}

func (mock *versionRepoMock) GetCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
	Number    int
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *versionRepoMock) List(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error) {
	if mock.ListFunc == nil {
		panic("versionRepoMock.ListFunc: method is nil but versionRepo.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		Order     domain.VersionOrder
	}{Ctx: ctx, ArticleID: articleID, Order: order}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, articleID, order)
}

func (mock *versionRepoMock) ListCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
	Order     domain.VersionOrder
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
