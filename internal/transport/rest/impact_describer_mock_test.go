package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ impactDescriber = &impactDescriberMock{}

type impactDescriberMock struct {
	DescribeFunc func(ctx context.Context, op domain.Operation, targets []uuid.UUID) (domain.ImpactSummary, error)

	calls struct {
		Describe []struct {
			Ctx     context.Context
			Op      domain.Operation
			Targets []uuid.UUID
		}
	}
	lockDescribe sync.RWMutex
}

func (mock *impactDescriberMock) Describe(ctx context.Context, op domain.Operation, targets []uuid.UUID) (domain.ImpactSummary, error) {
	if mock.DescribeFunc == nil {
		panic("impactDescriberMock.DescribeFunc: method is nil but impactDescriber.Describe was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Op      domain.Operation
		Targets []uuid.UUID
	}{Ctx: ctx, Op: op, Targets: targets}
	mock.lockDescribe.Lock()
	mock.calls.Describe = append(mock.calls.Describe, callInfo)
	mock.lockDescribe.Unlock()
	return mock.DescribeFunc(ctx, op, targets)
}

func (mock *impactDescriberMock) DescribeCalls() []struct {
	Ctx     context.Context
	Op      domain.Operation
	Targets []uuid.UUID
} {
	mock.lockDescribe.RLock()
	calls := mock.calls.Describe
	mock.lockDescribe.RUnlock()
	return calls
}
