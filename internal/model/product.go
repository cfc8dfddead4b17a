package model

// EntityProducts is the storage key for the product collection.
const EntityProducts = "products"

// ProductType classifies how a laundering service is priced.
type ProductType string

const (
	TypeKiloan ProductType = "kiloan" // per kilogram
	TypeSatuan ProductType = "satuan" // per piece
)

// Product is one laundering service offered by an outlet. Price is in whole
// currency units (rupiah); no fractional amounts exist anywhere in the
// domain.
type Product struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name" validate:"required"`
	Price    int64       `json:"price" validate:"required,gt=0"`
	OutletID int64       `json:"outletId" validate:"required"`
	Type     ProductType `json:"type" validate:"required,product_type"`
}
