package version

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ contentWriter = &contentWriterMock{}

type contentWriterMock struct {
	WriteFunc func(ctx context.Context, articleID uuid.UUID, content []byte) error

	calls struct {
		Write []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
			Content   []byte
		}
	}
	lockWrite sync.RWMutex
}

func (mock *contentWriterMock) Write(ctx context.Context, articleID uuid.UUID, content []byte) error {
	if mock.WriteFunc == nil {
		panic("contentWriterMock.WriteFunc: method is nil but contentWriter.Write was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		Content   []byte
	}{Ctx: ctx, ArticleID: articleID, Content: content}
	mock.lockWrite.Lock()
	mock.calls.Write = append(mock.calls.Write, callInfo)
	mock.lockWrite.Unlock()
	return mock.WriteFunc(ctx, articleID, content)
}

func (mock *contentWriterMock) WriteCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
	Content   []byte
} {
	mock.lockWrite.RLock()
	calls := mock.calls.Write
	mock.lockWrite.RUnlock()
	return calls
}
