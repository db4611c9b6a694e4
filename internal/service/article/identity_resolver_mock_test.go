package article

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ identityResolver = &identityResolverMock{}

type identityResolverMock struct {
	ResolveFunc func(ctx context.Context, userID uuid.UUID) (domain.Identity, error)

	calls struct {
		Resolve []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockResolve sync.RWMutex
}

func (mock *identityResolverMock) Resolve(ctx context.Context, userID uuid.UUID) (domain.Identity, error) {
	if mock.ResolveFunc == nil {
		panic("identityResolverMock.ResolveFunc: method is nil but identityResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, userID)
}

func (mock *identityResolverMock) ResolveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
