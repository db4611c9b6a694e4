package audit

import (
	"context"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	AppendFunc func(ctx context.Context, rec domain.ActionRecord) (domain.ActionRecord, error)
	QueryFunc  func(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error)
	StreamFunc func(ctx context.Context, f domain.AuditFilter, fn func(domain.ActionRecord) error) error

	calls struct {
		Append []struct {
			Ctx context.Context
			Rec domain.ActionRecord
		}
		Query []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
		Stream []struct {
			Ctx context.Context
			F   domain.AuditFilter
			Fn  func(domain.ActionRecord) error
		}
	}
	lockAppend sync.RWMutex
	lockQuery  sync.RWMutex
	lockStream sync.RWMutex
}

func (mock *recordStoreMock) Append(ctx context.Context, rec domain.ActionRecord) (domain.ActionRecord, error) {
	if mock.AppendFunc == nil {
		panic("recordStoreMock.AppendFunc: method is nil but recordStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.ActionRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *recordStoreMock) AppendCalls() []struct {
	Ctx context.Context
	Rec domain.ActionRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *recordStoreMock) Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error) {
	if mock.QueryFunc == nil {
		panic("recordStoreMock.QueryFunc: method is nil but recordStore.Query was just called")
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

func (mock *recordStoreMock) QueryCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *recordStoreMock) Stream(ctx context.Context, f domain.AuditFilter, fn func(domain.ActionRecord) error) error {
	if mock.StreamFunc == nil {
		panic("recordStoreMock.StreamFunc: method is nil but recordStore.Stream was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
		Fn  func(domain.ActionRecord) error
	}{Ctx: ctx, F: f, Fn: fn}
	mock.lockStream.Lock()
	mock.calls.Stream = append(mock.calls.Stream, callInfo)
	mock.lockStream.Unlock()
	return mock.StreamFunc(ctx, f, fn)
}

func (mock *recordStoreMock) StreamCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
	Fn  func(domain.ActionRecord) error
} {
	mock.lockStream.RLock()
	calls := mock.calls.Stream
	mock.lockStream.RUnlock()
	return calls
}
