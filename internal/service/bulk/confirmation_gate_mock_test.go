package bulk

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ confirmationGate = &confirmationGateMock{}

type confirmationGateMock struct {
	RequiresConfirmationFunc func(op domain.OperationKind, targetCount int) bool
	VerifyFunc               func(ctx context.Context, token string, op domain.Operation, targets []uuid.UUID) error

	calls struct {
		RequiresConfirmation []struct {
			Op          domain.OperationKind
			TargetCount int
		}
		Verify []struct {
			Ctx     context.Context
			Token   string
			Op      domain.Operation
			Targets []uuid.UUID
		}
	}
	lockRequiresConfirmation sync.RWMutex
	lockVerify               sync.RWMutex
}

func (mock *confirmationGateMock) RequiresConfirmation(op domain.OperationKind, targetCount int) bool {
	if mock.RequiresConfirmationFunc == nil {
		panic("confirmationGateMock.RequiresConfirmationFunc: method is nil but confirmationGate.RequiresConfirmation was just called")
	}
	callInfo := struct {
		Op          domain.OperationKind
		TargetCount int
	}{Op: op, TargetCount: targetCount}
	mock.lockRequiresConfirmation.Lock()
	mock.calls.RequiresConfirmation = append(mock.calls.RequiresConfirmation, callInfo)
	mock.lockRequiresConfirmation.Unlock()
	return mock.RequiresConfirmationFunc(op, targetCount)
}

func (mock *confirmationGateMock) RequiresConfirmationCalls() []struct {
	Op          domain.OperationKind
	TargetCount int
} {
	mock.lockRequiresConfirmation.RLock()
	calls := mock.calls.RequiresConfirmation
	mock.lockRequiresConfirmation.RUnlock()
	return calls
}

func (mock *confirmationGateMock) Verify(ctx context.Context, token string, op domain.Operation, targets []uuid.UUID) error {
	if mock.VerifyFunc == nil {
		panic("confirmationGateMock.VerifyFunc: method is nil but confirmationGate.Verify was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Token   string
		Op      domain.Operation
		Targets []uuid.UUID
	}{Ctx: ctx, Token: token, Op: op, Targets: targets}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, token, op, targets)
}

func (mock *confirmationGateMock) VerifyCalls() []struct {
	Ctx     context.Context
	Token   string
	Op      domain.Operation
	Targets []uuid.UUID
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
