package rest

import (
	"context"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ ownershipService = &ownershipServiceMock{}

type ownershipServiceMock struct {
	TransferFunc func(ctx context.Context, req domain.OwnershipTransferRequest) (*domain.TransferOutcome, error)

	calls struct {
		Transfer []struct {
			Ctx context.Context
			Req domain.OwnershipTransferRequest
		}
	}
	lockTransfer sync.RWMutex
}

func (mock *ownershipServiceMock) Transfer(ctx context.Context, req domain.OwnershipTransferRequest) (*domain.TransferOutcome, error) {
	if mock.TransferFunc == nil {
		panic("ownershipServiceMock.TransferFunc: method is nil but ownershipService.Transfer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.OwnershipTransferRequest
	}{Ctx: ctx, Req: req}
	mock.lockTransfer.Lock()
	mock.calls.Transfer = append(mock.calls.Transfer, callInfo)
	mock.lockTransfer.Unlock()
	return mock.TransferFunc(ctx, req)
}

func (mock *ownershipServiceMock) TransferCalls() []struct {
	Ctx context.Context
	Req domain.OwnershipTransferRequest
} {
	mock.lockTransfer.RLock()
	calls := mock.calls.Transfer
	mock.lockTransfer.RUnlock()
	return calls
}
