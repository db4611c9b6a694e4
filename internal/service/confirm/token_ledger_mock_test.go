package confirm

import (
	"context"
	"sync"
	"time"
)

var _ tokenLedger = &tokenLedgerMock{}

type tokenLedgerMock struct {
	ConsumeFunc func(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)

	calls struct {
		Consume []struct {
			Ctx     context.Context
			TokenID string
			Ttl     time.Duration
		}
	}
	lockConsume sync.RWMutex
}

func (mock *tokenLedgerMock) Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if mock.ConsumeFunc == nil {
		panic("tokenLedgerMock.ConsumeFunc: method is nil but tokenLedger.Consume was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TokenID string
		Ttl     time.Duration
	}{Ctx: ctx, TokenID: tokenID, Ttl: ttl}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, callInfo)
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, tokenID, ttl)
}

func (mock *tokenLedgerMock) ConsumeCalls() []struct {
	Ctx     context.Context
	TokenID string
	Ttl     time.Duration
} {
	mock.lockConsume.RLock()
	calls := mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}
