package ownership

import (
	"context"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	AppendFunc func(ctx context.Context, draft domain.ActionDraft) (domain.ActionRecord, error)

	calls struct {
		Append []struct {
			Ctx   context.Context
			Draft domain.ActionDraft
		}
	}
	lockAppend sync.RWMutex
}

func (mock *auditLoggerMock) Append(ctx context.Context, draft domain.ActionDraft) (domain.ActionRecord, error) {
	if mock.AppendFunc == nil {
		panic("auditLoggerMock.AppendFunc: method is nil but auditLogger.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.ActionDraft
	}{Ctx: ctx, Draft: draft}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, draft)
}

func (mock *auditLoggerMock) AppendCalls() []struct {
	Ctx   context.Context
	Draft domain.ActionDraft
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
