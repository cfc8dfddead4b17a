package model

// EntityTransactions is the storage key for the transaction collection.
const EntityTransactions = "transactions"

// Transaction is an immutable financial record for one completed, paid
// laundry item. Transactions are derived by the status-update rule and never
// created, edited, or deleted by hand; a laundry item yields at most one.
type Transaction struct {
	ID          int64  `json:"id"`
	LaundryCode string `json:"laundryCode"`
	ServiceID   int64  `json:"serviceId"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"` // YYYY-MM-DD
}
