package inventory

import "time"

type InventoryRecordDB struct {
	OwnerID   string
	ItemName  string
	Quantity  float64
	Location  string
	UpdatedAt time.Time
}
