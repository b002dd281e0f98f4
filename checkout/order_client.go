package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront-service/models"
)

// OrderServiceError is a rejection from the order service with its own
// message, surfaced to the user verbatim.
type OrderServiceError struct {
	StatusCode int
	Message    string
}

func (e *OrderServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("order service: %s", e.Message)
	}
	return fmt.Sprintf("order service returned %d", e.StatusCode)
}

// OrderClient talks to the external order service over HTTP.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Create submits the order payload to POST /orders.
func (c *OrderClient) Create(ctx context.Context, order models.OrderRequest) (*models.OrderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/orders", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)

		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return nil, &OrderServiceError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out models.OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("order service response: %w", err)
	}
	return &out, nil
}
