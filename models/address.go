package models

// Address matches the external address service's contract. The selected
// address at checkout is ephemeral UI state, never part of the cart.
type Address struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Name        string `json:"name"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"is_default"`
}
