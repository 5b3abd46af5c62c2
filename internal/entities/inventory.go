package entities

import "time"

type InventoryRecord struct {
	OwnerID   string
	ItemName  string
	Quantity  float64
	Location  string
	UpdatedAt time.Time
}

// InventoryAdjustment — строка идемпотентного журнала: одна запись на доставку.
type InventoryAdjustment struct {
	DeliveryID string
	OwnerID    string
	ItemName   string
	Quantity   float64
	AppliedAt  time.Time
}
