package model

// EntityLaundryItems is the storage key for the laundry item collection.
const EntityLaundryItems = "laundryItems"

// ProcessStatus tracks the physical handling of an intake order.
type ProcessStatus string

const (
	ProcessOngoing   ProcessStatus = "proses"
	ProcessDone      ProcessStatus = "selesai"
	ProcessCancelled ProcessStatus = "batal"
)

// PaymentStatus tracks billing. PaymentPaid is a sink: once reached it can
// never be changed to anything else.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "belum bayar"
	PaymentPaid   PaymentStatus = "sudah bayar"
	PaymentRefund PaymentStatus = "refund"
)

// LaundryItem is one customer's intake order for a single laundering
// service. Code is the human-readable handle (e.g. "LD-003-2026") customers
// track the order by; it is unique and immutable once assigned.
type LaundryItem struct {
	ID            int64         `json:"id"`
	Code          string        `json:"code"`
	CustomerName  string        `json:"customerName" validate:"required"`
	CustomerPhone string        `json:"customerPhone" validate:"required"`
	ServiceID     int64         `json:"serviceId" validate:"required"`
	Quantity      int           `json:"quantity" validate:"required,gt=0"`
	OutletID      int64         `json:"outletId" validate:"required"`
	ProcessStatus ProcessStatus `json:"processStatus" validate:"required,process_status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"required,payment_status"`
	Notes         string        `json:"notes"`
	CreatedAt     string        `json:"createdAt"` // YYYY-MM-DD
}
