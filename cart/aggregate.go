package cart

import (
	"math"

	"storefront-service/models"
)

// ItemCount is the header-badge number: the sum of line quantities.
func ItemCount(c *models.Cart) int {
	if c == nil {
		return 0
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// TotalPrice sums price*quantity over all lines, rounded to 2 decimals.
func TotalPrice(c *models.Cart) float64 {
	if c == nil {
		return 0
	}
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}
