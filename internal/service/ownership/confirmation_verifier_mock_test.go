package ownership

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ confirmationVerifier = &confirmationVerifierMock{}

type confirmationVerifierMock struct {
	VerifyFunc func(ctx context.Context, token string, op domain.Operation, targets []uuid.UUID) error

	calls struct {
		Verify []struct {
			Ctx     context.Context
			Token   string
			Op      domain.Operation
			Targets []uuid.UUID
		}
	}
	lockVerify sync.RWMutex
}

func (mock *confirmationVerifierMock) Verify(ctx context.Context, token string, op domain.Operation, targets []uuid.UUID) error {
	if mock.VerifyFunc == nil {
		panic("confirmationVerifierMock.VerifyFunc: method is nil but confirmationVerifier.Verify was just called")
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

func (mock *confirmationVerifierMock) VerifyCalls() []struct {
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
