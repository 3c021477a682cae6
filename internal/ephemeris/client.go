// Package ephemeris fetches computed planet positions from an upstream API.
//
// The client does no astronomy itself. It posts a birth timestamp to a
// configured JSON endpoint and hands the resulting positions and aspects
// back as domain records; the validator decides what is usable.
package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"astroloh/internal/domain"
)

var (
	// ErrUnavailable wraps transport-level failures talking to the upstream
	ErrUnavailable = errors.New("ephemeris upstream unavailable")
	// ErrBadResponse covers non-2xx statuses and undecodable bodies
	ErrBadResponse = errors.New("ephemeris upstream returned a bad response")
)

const defaultTimeout = 10 * time.Second

// Client talks to the ephemeris HTTP API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:9090"
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type computeRequest struct {
	BirthDate time.Time `json:"birth_date"`
}

type computeResponse struct {
	Planets []domain.PlanetPosition `json:"planets"`
	Aspects []domain.AspectData     `json:"aspects"`
}

// Compute fetches positions and aspects for a birth timestamp
func (c *Client) Compute(ctx context.Context, birth time.Time) ([]domain.PlanetPosition, []domain.AspectData, error) {
	body, err := json.Marshal(computeRequest{BirthDate: birth})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/compute", bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var decoded computeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return decoded.Planets, decoded.Aspects, nil
}
