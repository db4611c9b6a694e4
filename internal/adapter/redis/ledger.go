package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/editorial-admin/internal/domain"
)

const ledgerPrefix = "confirm:used:"

// TokenLedger records redeemed confirmation tokens so each can be used once.
type TokenLedger struct {
	client goredis.UniversalClient
}

// NewTokenLedger creates a TokenLedger on client.
func NewTokenLedger(client goredis.UniversalClient) *TokenLedger {
	return &TokenLedger{client: client}
}

// Consume marks tokenID as used for ttl. It returns false if the token had
// already been consumed.
func (l *TokenLedger) Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if tokenID == "" {
		return false, domain.NewValidationError("confirmation_token", "missing token id")
	}

	ok, err := l.client.SetNX(ctx, ledgerPrefix+tokenID, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		return false, fmt.Errorf("token ledger: %w: %w", domain.ErrTransient, err)
	}
	return ok, nil
}

// Ping reports whether Redis is reachable.
func (l *TokenLedger) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
