// Package gateway talks to the remote booking backend. It fills the same role
// the repository layer would for a local store: every operation is a discrete
// network call returning domain types or sentinel errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type Client struct {
	base     string
	http     *http.Client
	validate *Validator
	strategy retry.Strategy
}

func New(cfg Config) *Client {
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 3
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}

	return &Client{
		base:     cfg.BaseURL,
		http:     &http.Client{Timeout: cfg.Timeout},
		validate: NewValidator(),
		strategy: retry.Strategy{
			Attempts: attempts,
			Delay:    delay,
			Backoff:  2,
		},
	}
}

// envelope is the wire format every backend response follows. A response with
// success=false is the sole failure signal, regardless of HTTP status.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`

	// creation responses carry these at the top level
	BookingID   string `json:"bookingId,omitempty"`
	BookingCode string `json:"bookingCode,omitempty"`
}

// do performs one request and decodes the envelope. Mutating calls go through
// here directly: they are never retried.
func (c *Client) do(ctx context.Context, method, path string, body any, header http.Header) (*envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response from %s: %v", domain.ErrNetwork, path, err)
	}

	return &env, nil
}

// doRetry wraps do with the retry strategy. Only safe for idempotent reads and
// idempotent upserts. Retries happen on transport failures only; anything else
// is terminal and reported as-is.
func (c *Client) doRetry(ctx context.Context, method, path string, body any) (*envelope, error) {
	var env *envelope
	var terminal error
	err := retry.Do(func() error {
		var doErr error
		env, doErr = c.do(ctx, method, path, body, nil)
		if doErr != nil && !errors.Is(doErr, domain.ErrNetwork) {
			terminal = doErr
			return nil
		}
		return doErr
	}, c.strategy)
	if err != nil {
		return nil, err
	}
	if terminal != nil {
		return nil, terminal
	}
	return env, nil
}

func decodeData(env *envelope, out any) error {
	if len(env.Data) == 0 {
		return domain.ErrNotFound
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode payload: %v", domain.ErrNetwork, err)
	}
	return nil
}
