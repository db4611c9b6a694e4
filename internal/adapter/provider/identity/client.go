// Package identity is the HTTP client for the identity provider.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/provider"
)

// Client resolves user ids to identities.
type Client struct {
	baseURL    string
	httpClient *http.Client
	read       provider.RetryPolicy
	log        *slog.Logger
}

// NewClient creates a Client for cfg.BaseURL.
func NewClient(logger *slog.Logger, cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		read:       provider.ReadPolicy(cfg.ReadAttempts),
		log:        logger.With("adapter", "identity"),
	}
}

type userResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Resolve returns the identity of userID, or an error wrapping
// domain.ErrNotFound if the provider does not know it.
func (c *Client) Resolve(ctx context.Context, userID uuid.UUID) (domain.Identity, error) {
	resp, err := c.read.Do(ctx, c.httpClient, c.log, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+userID.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("identity: resolve %s: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Identity{}, provider.StatusError(resp, "identity: user "+userID.String())
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Identity{}, fmt.Errorf("identity: decode json: %w", err)
	}

	return domain.Identity{
		UserID:      userID,
		Email:       body.Email,
		DisplayName: body.DisplayName,
	}, nil
}

// Ping checks that the identity provider answers.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}
	resp.Body.Close()
	return nil
}
