package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/service/version"
	"sync"
)

var _ versionService = &versionServiceMock{}

type versionServiceMock struct {
	GetVersionFunc   func(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error)
	ListVersionsFunc func(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error)
	RestoreFunc      func(ctx context.Context, input version.RestoreInput) (domain.ArticleVersion, error)
	SnapshotFunc     func(ctx context.Context, input version.SnapshotInput) (domain.ArticleVersion, error)

	calls struct {
		GetVersion []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
			Number    int
		}
		ListVersions []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
			Order     domain.VersionOrder
		}
		Restore []struct {
			Ctx   context.Context
			Input version.RestoreInput
		}
		Snapshot []struct {
			Ctx   context.Context
			Input version.SnapshotInput
		}
	}
	lockGetVersion   sync.RWMutex
	lockListVersions sync.RWMutex
	lockRestore      sync.RWMutex
	lockSnapshot     sync.RWMutex
}

func (mock *versionServiceMock) GetVersion(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error) {
	if mock.GetVersionFunc == nil {
		panic("versionServiceMock.GetVersionFunc: method is nil but versionService.GetVersion was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		Number    int
	}{Ctx: ctx, ArticleID: articleID, Number: number}
	mock.lockGetVersion.Lock()
	mock.calls.GetVersion = append(mock.calls.GetVersion, callInfo)
	mock.lockGetVersion.Unlock()
	return mock.GetVersionFunc(ctx, articleID, number)
}

func (mock *versionServiceMock) GetVersionCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
	Number    int
} {
	mock.lockGetVersion.RLock()
	calls := mock.calls.GetVersion
	mock.lockGetVersion.RUnlock()
	return calls
}

func (mock *versionServiceMock) ListVersions(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error) {
	if mock.ListVersionsFunc == nil {
		panic("versionServiceMock.ListVersionsFunc: method is nil but versionService.ListVersions was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		Order     domain.VersionOrder
	}{Ctx: ctx, ArticleID: articleID, Order: order}
	mock.lockListVersions.Lock()
	mock.calls.ListVersions = append(mock.calls.ListVersions, callInfo)
	mock.lockListVersions.Unlock()
	return mock.ListVersionsFunc(ctx, articleID, order)
}

func (mock *versionServiceMock) ListVersionsCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
	Order     domain.VersionOrder
} {
	mock.lockListVersions.RLock()
	calls := mock.calls.ListVersions
	mock.lockListVersions.RUnlock()
	return calls
}

func (mock *versionServiceMock) Restore(ctx context.Context, input version.RestoreInput) (domain.ArticleVersion, error) {
	if mock.RestoreFunc == nil {
		panic("versionServiceMock.RestoreFunc: method is nil but versionService.Restore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input version.RestoreInput
	}{Ctx: ctx, Input: input}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, input)
}

func (mock *versionServiceMock) RestoreCalls() []struct {
	Ctx   context.Context
	Input version.RestoreInput
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *versionServiceMock) Snapshot(ctx context.Context, input version.SnapshotInput) (domain.ArticleVersion, error) {
	if mock.SnapshotFunc == nil {
		panic("versionServiceMock.SnapshotFunc: method is nil but versionService.Snapshot was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input version.SnapshotInput
	}{Ctx: ctx, Input: input}
	mock.lockSnapshot.Lock()
	mock.calls.Snapshot = append(mock.calls.Snapshot, callInfo)
	mock.lockSnapshot.Unlock()
	return mock.SnapshotFunc(ctx, input)
}

func (mock *versionServiceMock) SnapshotCalls() []struct {
	Ctx   context.Context
	Input version.SnapshotInput
} {
	mock.lockSnapshot.RLock()
	calls := mock.calls.Snapshot
	mock.lockSnapshot.RUnlock()
	return calls
}
