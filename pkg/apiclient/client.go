// Package apiclient is a typed client for the PetBhai API. It uses a
// fixed per-request deadline and up to three attempts with linear
// backoff, retrying only server errors and transport failures. A 4xx
// is the caller's problem and is never retried.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"petbhai-backend/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	maxAttempts    = 3
	backoffStep    = 500 * time.Millisecond
)

var (
	// ErrTimeout means the request deadline elapsed.
	ErrTimeout = errors.New("request timed out")
	// ErrUnreachable means the server could not be reached at all.
	ErrUnreachable = errors.New("server unreachable")
)

// APIError is a non-2xx response from the server, carrying its message
// so the UI can show it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one request with the retry policy. Attempts sleep
// backoffStep, 2*backoffStep, ... between tries.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return classifyTransport(ctx.Err())
			case <-time.After(time.Duration(attempt-1) * backoffStep):
			}
		}

		retry, err := c.once(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
	}
	return lastErr
}

// once performs a single attempt. The bool reports whether the failure
// is worth retrying.
func (c *Client) once(ctx context.Context, method, path string, payload []byte, out interface{}) (bool, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// transport failures (network down, timeout) are retryable
		return true, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return true, &APIError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}
	if resp.StatusCode >= 400 {
		return false, &APIError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return false, nil
}

func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

func readMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return "unexpected response"
	}
	if body.Message != "" {
		return body.Message
	}
	if body.Error != "" {
		return body.Error
	}
	return "unexpected response"
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Vets(ctx context.Context) ([]domain.Vet, error) {
	var vets []domain.Vet
	if err := c.do(ctx, http.MethodGet, "/api/vets", nil, &vets); err != nil {
		return nil, err
	}
	return vets, nil
}

func (c *Client) Order(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, id, reason string) (*domain.Order, error) {
	var order domain.Order
	body := map[string]string{"reason": reason}
	if err := c.do(ctx, http.MethodPost, "/api/orders/"+id+"/cancel", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
