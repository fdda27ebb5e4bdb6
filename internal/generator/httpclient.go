package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// maxResponseBytes caps how much of a generator response is read (1MB).
const maxResponseBytes = 1 << 20

var errEmptyMessage = errors.New("generator returned empty message")

// ClientConfig holds configuration for the HTTP generator client.
type ClientConfig struct {
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// DefaultClientConfig returns default client configuration.
func DefaultClientConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL:        baseURL,
		ConnectTimeout: 5 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// Client talks to the external natural-language generation service over
// HTTP/JSON.
type Client struct {
	cfg    ClientConfig
	http   *http.Client
	logger *slog.Logger
}

var _ Generator = (*Client)(nil)

// NewClient creates a generator client and verifies the service is
// reachable so callers can fail fast (or degrade) at startup.
func NewClient(cfg ClientConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("generator base URL is empty")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("generator at %s not ready: %w", cfg.BaseURL, err)
	}

	logger.Info("Connected to generation service", "address", cfg.BaseURL)
	return c, nil
}

// Ping checks service health.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

// NextTurn posts the turn request and decodes the structured result. The
// caller treats any error as "use the fallback"; nothing here is fatal to
// the session.
func (c *Client) NextTurn(ctx context.Context, turn TurnRequest) (*TurnResult, error) {
	body, err := json.Marshal(turn)
	if err != nil {
		return nil, fmt.Errorf("encode turn request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/turn", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build turn request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call generation service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation service returned %d", resp.StatusCode)
	}

	var result TurnResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode turn result: %w", err)
	}
	if strings.TrimSpace(result.Message) == "" {
		return nil, errEmptyMessage
	}
	return &result, nil
}
