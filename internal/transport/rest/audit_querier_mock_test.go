package rest

import (
	"context"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ auditQuerier = &auditQuerierMock{}

type auditQuerierMock struct {
	QueryFunc func(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error)

	calls struct {
		Query []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
	}
	lockQuery sync.RWMutex
}

func (mock *auditQuerierMock) Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error) {
	if mock.QueryFunc == nil {
		panic("auditQuerierMock.QueryFunc: method is nil but auditQuerier.Query was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
	}{Ctx: ctx, F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, f)
}

func (mock *auditQuerierMock) QueryCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}
