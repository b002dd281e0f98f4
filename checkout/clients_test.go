package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/checkout"
	"storefront-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderClientCreate(t *testing.T) {
	var got models.OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.OrderResponse{OrderID: "ord-42", Status: "pending"})
	}))
	defer srv.Close()

	client := checkout.NewOrderClient(srv.URL)
	resp, err := client.Create(context.Background(), models.OrderRequest{
		Items:     []models.OrderItem{{ProductID: "1", Quantity: 2}},
		AddressID: "addr-1",
		Notes:     "ring the bell",
	})
	require.NoError(t, err)

	assert.Equal(t, "ord-42", resp.OrderID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "addr-1", got.AddressID)
	assert.Len(t, got.Items, 1)
}

func TestOrderClientSurfacesServiceMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "insufficient stock"})
	}))
	defer srv.Close()

	client := checkout.NewOrderClient(srv.URL)
	_, err := client.Create(context.Background(), models.OrderRequest{AddressID: "addr-1"})
	require.Error(t, err)

	var svcErr *checkout.OrderServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "insufficient stock", svcErr.Message)
}

func TestOrderClientFallsBackWhenMessageMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := checkout.NewOrderClient(srv.URL)
	_, err := client.Create(context.Background(), models.OrderRequest{AddressID: "addr-1"})
	require.Error(t, err)

	var svcErr *checkout.OrderServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Empty(t, svcErr.Message)
	assert.Contains(t, svcErr.Error(), "500")
}

func TestAddressClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/addresses", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []models.Address{
				{ID: "a1", Label: "Home", AddressLine: "1 Main St", City: "Colombo", IsDefault: true},
				{ID: "a2", Label: "Work", AddressLine: "2 Office Rd", City: "Kandy"},
			},
		})
	}))
	defer srv.Close()

	client := checkout.NewAddressClient(srv.URL)
	addresses, err := client.List(context.Background(), "tok-123")
	require.NoError(t, err)

	require.Len(t, addresses, 2)
	assert.Equal(t, "Home", addresses[0].Label)
	assert.True(t, addresses[0].IsDefault)
}

func TestAddressClientListEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := checkout.NewAddressClient(srv.URL)
	addresses, err := client.List(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.NotNil(t, addresses)
	assert.Empty(t, addresses)
}

func TestAddressClientCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var in models.Address
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "a9"
		json.NewEncoder(w).Encode(map[string]interface{}{"data": in})
	}))
	defer srv.Close()

	client := checkout.NewAddressClient(srv.URL)
	created, err := client.Create(context.Background(), "tok-123", models.Address{
		Label:       "Home",
		Name:        "A. Perera",
		AddressLine: "1 Main St",
		City:        "Colombo",
		PostalCode:  "00100",
		Phone:       "0771234567",
		IsDefault:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "a9", created.ID)
	assert.Equal(t, "Home", created.Label)
	assert.True(t, created.IsDefault)
}

func TestAddressClientCreateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := checkout.NewAddressClient(srv.URL)
	_, err := client.Create(context.Background(), "tok-123", models.Address{})
	assert.Error(t, err)
}
