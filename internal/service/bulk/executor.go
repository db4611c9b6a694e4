package bulk

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type itemMutator interface {
	Prepare(ctx context.Context, op domain.Operation) error
	Apply(ctx context.Context, actor domain.Actor, id uuid.UUID, op domain.Operation) error
}

type auditLogger interface {
	Append(ctx context.Context, draft domain.ActionDraft) (domain.ActionRecord, error)
}

type confirmationGate interface {
	RequiresConfirmation(op domain.OperationKind, targetCount int) bool
	Verify(ctx context.Context, token string, op domain.Operation, targets []uuid.UUID) error
}

type recorder interface {
	ObserveBatch(op domain.OperationKind, d time.Duration)
	ObserveItem(op domain.OperationKind, outcome string)
	AuditWriteFailed(op domain.OperationKind)
}

// Executor applies one operation to many articles with bounded concurrency
// and records the batch as a single audit record.
type Executor struct {
	items   itemMutator
	audit   auditLogger
	gate    confirmationGate
	metrics recorder
	tracer  trace.Tracer
	cfg     config.BulkConfig
	clock   func() time.Time
	log     *slog.Logger
}

// NewExecutor creates a new bulk Executor. metrics may be nil.
func NewExecutor(
	log *slog.Logger,
	items itemMutator,
	audit auditLogger,
	gate confirmationGate,
	metrics recorder,
	cfg config.BulkConfig,
) *Executor {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Executor{
		items:   items,
		audit:   audit,
		gate:    gate,
		metrics: metrics,
		tracer:  otel.Tracer("github.com/heartmarshall/editorial-admin/internal/service/bulk"),
		cfg:     cfg,
		clock:   time.Now,
		log:     log.With("service", "bulk"),
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveBatch(domain.OperationKind, time.Duration) {}
func (nopRecorder) ObserveItem(domain.OperationKind, string)         {}
func (nopRecorder) AuditWriteFailed(domain.OperationKind)            {}
