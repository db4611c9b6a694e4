package bulk

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"sync"
)

var _ itemMutator = &itemMutatorMock{}

type itemMutatorMock struct {
	ApplyFunc   func(ctx context.Context, actor domain.Actor, id uuid.UUID, op domain.Operation) error
	PrepareFunc func(ctx context.Context, op domain.Operation) error

	calls struct {
		Apply []struct {
			Ctx   context.Context
			Actor domain.Actor
			Id    uuid.UUID
			Op    domain.Operation
		}
		Prepare []struct {
			Ctx context.Context
			Op  domain.Operation
		}
	}
	lockApply   sync.RWMutex
	lockPrepare sync.RWMutex
}

func (mock *itemMutatorMock) Apply(ctx context.Context, actor domain.Actor, id uuid.UUID, op domain.Operation) error {
	if mock.ApplyFunc == nil {
		panic("itemMutatorMock.ApplyFunc: method is nil but itemMutator.Apply was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Id    uuid.UUID
		Op    domain.Operation
	}{Ctx: ctx, Actor: actor, Id: id, Op: op}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, actor, id, op)
}

func (mock *itemMutatorMock) ApplyCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Id    uuid.UUID
	Op    domain.Operation
} {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}

func (mock *itemMutatorMock) Prepare(ctx context.Context, op domain.Operation) error {
	if mock.PrepareFunc == nil {
		panic("itemMutatorMock.PrepareFunc: method is nil but itemMutator.Prepare was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Op  domain.Operation
	}{Ctx: ctx, Op: op}
	mock.lockPrepare.Lock()
	mock.calls.Prepare = append(mock.calls.Prepare, callInfo)
	mock.lockPrepare.Unlock()
	return mock.PrepareFunc(ctx, op)
}

func (mock *itemMutatorMock) PrepareCalls() []struct {
	Ctx context.Context
	Op  domain.Operation
} {
	mock.lockPrepare.RLock()
	calls := mock.calls.Prepare
	mock.lockPrepare.RUnlock()
	return calls
}
