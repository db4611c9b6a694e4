// Package contentstore is the HTTP client for the external article content store.
package contentstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/provider"
)

const maxContentSize = 32 << 20

// Client reads and writes article content over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	read       provider.RetryPolicy
	write      provider.RetryPolicy
	log        *slog.Logger
}

// NewClient creates a Client for cfg.BaseURL.
func NewClient(logger *slog.Logger, cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		read:       provider.ReadPolicy(cfg.ReadAttempts),
		write:      provider.WritePolicy(),
		log:        logger.With("adapter", "contentstore"),
	}
}

func (c *Client) contentURL(articleID uuid.UUID) string {
	return c.baseURL + "/articles/" + articleID.String() + "/content"
}

// Read returns the current content of an article.
func (c *Client) Read(ctx context.Context, articleID uuid.UUID) ([]byte, error) {
	resp, err := c.read.Do(ctx, c.httpClient, c.log, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL(articleID), nil)
	})
	if err != nil {
		return nil, fmt.Errorf("contentstore: read %s: %w", articleID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, provider.StatusError(resp, "contentstore: read "+articleID.String())
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentSize))
	if err != nil {
		return nil, fmt.Errorf("contentstore: read body: %w", err)
	}

	c.log.DebugContext(ctx, "content read", slog.String("article_id", articleID.String()), slog.Int("bytes", len(body)))
	return body, nil
}

// Write replaces the content of an article. It is attempted once.
func (c *Client) Write(ctx context.Context, articleID uuid.UUID, content []byte) error {
	resp, err := c.write.Do(ctx, c.httpClient, c.log, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentURL(articleID), bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/octet-stream")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("contentstore: write %s: %w", articleID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
	default:
		return provider.StatusError(resp, "contentstore: write "+articleID.String())
	}

	c.log.DebugContext(ctx, "content written", slog.String("article_id", articleID.String()), slog.Int("bytes", len(content)))
	return nil
}

// Ping checks that the content store answers.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("contentstore: %w", err)
	}
	resp.Body.Close()
	return nil
}
