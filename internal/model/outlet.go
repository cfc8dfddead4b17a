package model

// EntityOutlets is the storage key for the outlet collection.
const EntityOutlets = "outlets"

// Outlet is one physical branch location.
type Outlet struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}
