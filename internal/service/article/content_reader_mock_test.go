package article

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ contentReader = &contentReaderMock{}

type contentReaderMock struct {
	ReadFunc func(ctx context.Context, articleID uuid.UUID) ([]byte, error)

	calls struct {
		Read []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
		}
	}
	lockRead sync.RWMutex
}

func (mock *contentReaderMock) Read(ctx context.Context, articleID uuid.UUID) ([]byte, error) {
	if mock.ReadFunc == nil {
		panic("contentReaderMock.ReadFunc: method is nil but contentReader.Read was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockRead.Lock()
	mock.calls.Read = append(mock.calls.Read, callInfo)
	mock.lockRead.Unlock()
	return mock.ReadFunc(ctx, articleID)
}

func (mock *contentReaderMock) ReadCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
} {
	mock.lockRead.RLock()
	calls := mock.calls.Read
	mock.lockRead.RUnlock()
	return calls
}
