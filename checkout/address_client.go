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

// AddressClient talks to the external address service. The caller's
// bearer token is forwarded so the service scopes addresses to the
// account.
type AddressClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAddressClient(baseURL string) *AddressClient {
	return &AddressClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// List fetches the account's saved addresses from GET /addresses.
func (c *AddressClient) List(ctx context.Context, token string) ([]models.Address, error) {
	url := fmt.Sprintf("%s/addresses", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("address service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("address service returned %d", resp.StatusCode)
	}

	var envelope struct {
		Data []models.Address `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("address service response: %w", err)
	}
	if envelope.Data == nil {
		envelope.Data = []models.Address{}
	}
	return envelope.Data, nil
}

// Create saves a new address via POST /addresses and returns it with
// its assigned id.
func (c *AddressClient) Create(ctx context.Context, token string, addr models.Address) (*models.Address, error) {
	body, err := json.Marshal(addr)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/addresses", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("address service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("address service returned %d", resp.StatusCode)
	}

	var envelope struct {
		Data models.Address `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("address service response: %w", err)
	}
	return &envelope.Data, nil
}
