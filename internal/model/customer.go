package model

// EntityCustomers is the storage key for the customer collection.
const EntityCustomers = "customers"

// Customer is a registered walk-in customer. Laundry intake does not require
// one (items carry the customer's name and phone directly); the registry
// exists for the customer-management screens.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone" validate:"required"`
}
