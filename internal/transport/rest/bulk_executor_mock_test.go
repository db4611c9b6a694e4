package rest

import (
	"context"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/service/bulk"
	"sync"
)

var _ bulkExecutor = &bulkExecutorMock{}

type bulkExecutorMock struct {
	ExecuteFunc func(ctx context.Context, in bulk.ExecuteInput) (*domain.BulkOperationResult, error)

	calls struct {
		Execute []struct {
			Ctx context.Context
			In  bulk.ExecuteInput
		}
	}
	lockExecute sync.RWMutex
}

func (mock *bulkExecutorMock) Execute(ctx context.Context, in bulk.ExecuteInput) (*domain.BulkOperationResult, error) {
	if mock.ExecuteFunc == nil {
		panic("bulkExecutorMock.ExecuteFunc: method is nil but bulkExecutor.Execute was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  bulk.ExecuteInput
	}{Ctx: ctx, In: in}
	mock.lockExecute.Lock()
	mock.calls.Execute = append(mock.calls.Execute, callInfo)
	mock.lockExecute.Unlock()
	return mock.ExecuteFunc(ctx, in)
}

func (mock *bulkExecutorMock) ExecuteCalls() []struct {
	Ctx context.Context
	In  bulk.ExecuteInput
} {
	mock.lockExecute.RLock()
	calls := mock.calls.Execute
	mock.lockExecute.RUnlock()
	return calls
}
