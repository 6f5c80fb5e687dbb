// Package client is a typed Go client for the lubritrack API. Every call
// enforces a request timeout and distinguishes timeouts, server rejections
// and transport failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"lubritrack/internal/schedule"
)

const (
	DefaultTimeout = 10 * time.Second
	HealthTimeout  = 5 * time.Second
)

// ErrTimeout marks a request aborted by the client-side deadline. The user
// may retry manually; the client never retries on its own.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx response from the server, with the human-readable
// message extracted from its body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

type Client struct {
	httpClient    *http.Client
	baseURL       string
	timeout       time.Duration
	healthTimeout time.Duration
}

type Option func(*Client)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHealthTimeout overrides the shorter health-check timeout.
func WithHealthTimeout(d time.Duration) Option {
	return func(c *Client) { c.healthTimeout = d }
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a client for baseURL. An empty baseURL falls back to the
// LUBRITRACK_API_URL environment variable, then to localhost.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("LUBRITRACK_API_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	c := &Client{
		httpClient:    &http.Client{},
		baseURL:       baseURL,
		timeout:       DefaultTimeout,
		healthTimeout: HealthTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListEquipment(ctx context.Context, skip, limit int) ([]Equipment, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var out []Equipment
	err := c.do(ctx, http.MethodGet, "/api/equipos", q, nil, c.timeout, &out)
	return out, err
}

func (c *Client) GetEquipment(ctx context.Context, id int64) (*Equipment, error) {
	var out Equipment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/equipos/%d", id), nil, nil, c.timeout, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEquipment(ctx context.Context, req CreateEquipment) (*Equipment, error) {
	var out Equipment
	err := c.do(ctx, http.MethodPost, "/api/equipos", nil, req, c.timeout, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id int64, req UpdateEquipment) (*Equipment, error) {
	var out Equipment
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/equipos/%d", id), nil, req, c.timeout, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateEquipment soft-deletes: the record flips to INACTIVO and stays
// queryable by id. Deactivating twice succeeds both times.
func (c *Client) DeactivateEquipment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/equipos/%d", id), nil, nil, c.timeout, nil)
}

func (c *Client) EquipmentHistory(ctx context.Context, id int64) ([]HistoryEntry, error) {
	var out []HistoryEntry
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/equipos/%d/historial", id), nil, nil, c.timeout, &out)
	return out, err
}

// ListUpcomingPlans returns plans due within windowDays. The server's
// dias_restantes is authoritative when present; rows missing it (older
// servers, clock disagreements) get a local derivation as fallback.
func (c *Client) ListUpcomingPlans(ctx context.Context, windowDays int) ([]Plan, error) {
	q := url.Values{}
	q.Set("dias", strconv.Itoa(windowDays))

	var out []Plan
	if err := c.do(ctx, http.MethodGet, "/api/lubricacion/planes/proximos", q, nil, c.timeout, &out); err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range out {
		if out[i].DaysRemaining == nil {
			days := schedule.DaysRemaining(now, out[i].NextDue)
			out[i].DaysRemaining = &days
			out[i].Status = string(schedule.Classify(days))
		}
	}
	return out, nil
}

func (c *Client) RecordExecution(ctx context.Context, planID int64, req RecordExecution) (*HistoryEntry, error) {
	var out HistoryEntry
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/lubricacion/ejecutar/%d", planID), nil, req, c.timeout, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListHistory(ctx context.Context, planID *int64, limit int) ([]HistoryEntry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if planID != nil {
		q.Set("plan_id", strconv.FormatInt(*planID, 10))
	}

	var out []HistoryEntry
	err := c.do(ctx, http.MethodGet, "/api/lubricacion/historial", q, nil, c.timeout, &out)
	return out, err
}

func (c *Client) CalculateSKF(ctx context.Context, diameterMm, widthMm float64) (*SKFResult, error) {
	q := url.Values{}
	q.Set("diametro_mm", strconv.FormatFloat(diameterMm, 'f', -1, 64))
	q.Set("ancho_mm", strconv.FormatFloat(widthMm, 'f', -1, 64))

	var out SKFResult
	err := c.do(ctx, http.MethodGet, "/api/lubricacion/calcular-skf", q, nil, c.timeout, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Health uses the short timeout: it backs a liveness indicator and should
// fail fast rather than hang the poll loop.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, c.healthTimeout, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, timeout time.Duration, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status: resp.StatusCode,
			Detail: extractDetail(resp),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return nil
}

// extractDetail pulls a message from the error body: "detail" first,
// "message" as fallback, then a generic "HTTP <status>" line.
func extractDetail(resp *http.Response) string {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
