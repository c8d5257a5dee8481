package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"foodbites/cart-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OrderClient submits checkout payloads to order-svc. Remote errors carrying
// a message field surface verbatim; anything else collapses to a generic
// failure.
type OrderClient struct {
	BaseURL string
	Client  HTTPClient
}

func NewOrderClient(baseURL string, httpClient HTTPClient) *OrderClient {
	return &OrderClient{BaseURL: baseURL, Client: httpClient}
}

func (c *OrderClient) Submit(ctx context.Context, payload *domain.OrderPayload, authorization, idempotencyKey string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach order service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var remote struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil && remote.Message != "" {
		return errors.New(remote.Message)
	}
	return fmt.Errorf("failed to place order (status %d)", resp.StatusCode)
}
