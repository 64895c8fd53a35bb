// Package client calls the predictor API. It backs both the browser
// controller and the command-line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/courtside/tennis-predictor/internal/models"
)

const (
	NamesPath   = "/api/players/names"
	PredictPath = "/api/predict"
)

// Config holds API configuration
type Config struct {
	BaseURL string
	// Timeout of zero means requests only end with their context.
	Timeout time.Duration
}

type Client struct {
	config Config
	http   *http.Client
}

func New(cfg Config) *Client {
	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api status %d", e.Status)
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + path
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &body)
		return &StatusError{Status: resp.StatusCode, Message: body.Error}
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", req.URL.Path, err)
	}
	// Unmarshal rejects trailing data after the JSON value
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}

// PlayerNames fetches the autocomplete list.
func (c *Client) PlayerNames(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(NamesPath), nil)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := c.do(req, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Predict asks the backend who wins p.Player1 vs p.Player2.
func (c *Client) Predict(ctx context.Context, p models.PredictionRequest) (*models.PredictionResult, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(PredictPath), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result models.PredictionResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
