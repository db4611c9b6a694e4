package article

import (
	"context"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ exportSink = &exportSinkMock{}

type exportSinkMock struct {
	WriteFunc func(ctx context.Context, doc domain.ExportDocument) error

	calls struct {
		Write []struct {
			Ctx context.Context
			Doc domain.ExportDocument
		}
	}
	lockWrite sync.RWMutex
}

func (mock *exportSinkMock) Write(ctx context.Context, doc domain.ExportDocument) error {
	if mock.WriteFunc == nil {
		panic("exportSinkMock.WriteFunc: method is nil but exportSink.Write was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Doc domain.ExportDocument
	}{Ctx: ctx, Doc: doc}
	mock.lockWrite.Lock()
	mock.calls.Write = append(mock.calls.Write, callInfo)
	mock.lockWrite.Unlock()
	return mock.WriteFunc(ctx, doc)
}

func (mock *exportSinkMock) WriteCalls() []struct {
	Ctx context.Context
	Doc domain.ExportDocument
} {
	mock.lockWrite.RLock()
	calls := mock.calls.Write
	mock.lockWrite.RUnlock()
	return calls
}
