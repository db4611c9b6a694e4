package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.Confirmation.Secret) < 32 {
		return fmt.Errorf("confirmation.secret must be at least 32 characters (got %d)", len(c.Confirmation.Secret))
	}
	if c.Confirmation.TokenTTL <= 0 {
		return fmt.Errorf("confirmation.token_ttl must be > 0 (got %s)", c.Confirmation.TokenTTL)
	}

	if err := c.Bulk.validate(); err != nil {
		return fmt.Errorf("bulk: %w", err)
	}

	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if c.RateLimit.PerMinute < 1 {
		return fmt.Errorf("rate_limit.per_minute must be >= 1 (got %d)", c.RateLimit.PerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	if err := c.ContentStore.validate(); err != nil {
		return fmt.Errorf("content_store: %w", err)
	}
	if err := c.Identity.validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	return nil
}

func (b *BulkConfig) validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", b.Workers)
	}
	if b.ItemTimeout < 10*time.Millisecond {
		return fmt.Errorf("item_timeout must be >= 10ms (got %s)", b.ItemTimeout)
	}
	if b.MaxItems < 1 {
		return fmt.Errorf("max_items must be >= 1 (got %d)", b.MaxItems)
	}
	return nil
}

func (a *AuditConfig) validate() error {
	if a.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be >= 1 (got %d)", a.DefaultLimit)
	}
	if a.MaxLimit < a.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", a.MaxLimit, a.DefaultLimit)
	}
	if a.NotesMaxLen < 1 {
		return fmt.Errorf("notes_max_len must be >= 1 (got %d)", a.NotesMaxLen)
	}
	return nil
}

func (p *ProviderConfig) validate() error {
	u, err := url.Parse(p.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", p.BaseURL)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", p.Timeout)
	}
	if p.ReadAttempts < 1 {
		return fmt.Errorf("read_attempts must be >= 1 (got %d)", p.ReadAttempts)
	}
	return nil
}
