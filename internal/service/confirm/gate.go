package confirm

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

const issuer = "editorial-admin/confirm"

type tokenLedger interface {
	// Consume marks tokenID as used. It returns false if it was used before.
	Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

// Gate decides which operations need an explicit confirmation and issues and
// redeems the single-use tokens that carry it.
type Gate struct {
	secret []byte
	ttl    time.Duration
	ledger tokenLedger
	clock  func() time.Time
	log    *slog.Logger
}

// NewGate creates a new confirmation Gate.
func NewGate(log *slog.Logger, cfg config.ConfirmationConfig, ledger tokenLedger) *Gate {
	return &Gate{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
		ledger: ledger,
		clock:  time.Now,
		log:    log.With("service", "confirm"),
	}
}

// RequiresConfirmation reports whether op over targetCount items must be
// confirmed. Deletes and ownership transfers always do; anything else only
// when it touches more than one item.
func RequiresConfirmation(op domain.OperationKind, targetCount int) bool {
	switch op {
	case domain.OperationDelete, domain.OperationTransferOwnership:
		return true
	}
	return targetCount > 1
}

// RequiresConfirmation reports whether op over targetCount items must be confirmed.
func (g *Gate) RequiresConfirmation(op domain.OperationKind, targetCount int) bool {
	return RequiresConfirmation(op, targetCount)
}
