package federation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client resolves stubs against a peer service's entity endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the peer service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve sends a batch of representations and returns one raw entity per
// representation, in order. Missing entities come back as JSON null.
func (c *Client) Resolve(ctx context.Context, reps []Representation) ([]json.RawMessage, error) {
	body, err := json.Marshal(resolveRequest{Representations: reps})
	if err != nil {
		return nil, fmt.Errorf("federation: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/entities", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("federation: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("federation: resolve entities: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("federation: peer returned status %d", res.StatusCode)
	}

	var decoded struct {
		Entities []json.RawMessage `json:"entities"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("federation: decode response: %w", err)
	}
	if len(decoded.Entities) != len(reps) {
		return nil, fmt.Errorf("federation: peer returned %d entities for %d representations", len(decoded.Entities), len(reps))
	}
	return decoded.Entities, nil
}

// ResolveStub resolves a single stub. A null entity maps to
// ErrEntityNotFound.
func (c *Client) ResolveStub(ctx context.Context, entityType string, stub Stub) (json.RawMessage, error) {
	entities, err := c.Resolve(ctx, []Representation{{Type: entityType, ID: stub.ID}})
	if err != nil {
		return nil, err
	}
	raw := entities[0]
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrEntityNotFound
	}
	return raw, nil
}
