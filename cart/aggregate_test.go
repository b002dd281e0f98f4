package cart_test

import (
	"testing"

	"storefront-service/cart"
	"storefront-service/models"

	"github.com/stretchr/testify/assert"
)

func TestItemCount(t *testing.T) {
	assert.Equal(t, 0, cart.ItemCount(nil))
	assert.Equal(t, 0, cart.ItemCount(models.EmptyCart("u1")))

	c := &models.Cart{
		UserID: "u1",
		Items: []models.CartItem{
			{ProductID: "1", Quantity: 2},
			{ProductID: "2", Quantity: 3},
		},
	}
	assert.Equal(t, 5, cart.ItemCount(c))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 0.0, cart.TotalPrice(nil))

	c := &models.Cart{
		UserID: "u1",
		Items: []models.CartItem{
			{ProductID: "1", Price: 1000, Quantity: 1},
			{ProductID: "2", Price: 19.99, Quantity: 3},
		},
	}
	assert.Equal(t, 1059.97, cart.TotalPrice(c))
}

func TestTotalPriceRoundsToTwoDecimals(t *testing.T) {
	// 0.1 * 3 is 0.30000000000000004 in float math; the displayed
	// total must be 0.3.
	c := &models.Cart{
		UserID: "u1",
		Items:  []models.CartItem{{ProductID: "1", Price: 0.1, Quantity: 3}},
	}
	assert.Equal(t, 0.3, cart.TotalPrice(c))
}
