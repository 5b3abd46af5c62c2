package delivery

import "time"

type DeliveryDB struct {
	ID               string
	FarmerID         string
	TransporterID    *string
	WarehouseID      *string
	Status           string
	GoodsDescription string
	Quantity         float64
	Urgency          string
	PickupLat        *float64
	PickupLon        *float64
	PickupAddress    *string
	DropoffLat       *float64
	DropoffLon       *float64
	DropoffAddress   *string
	CreatedAt        time.Time
	AssignedAt       *time.Time
	InTransitAt      *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	Version          int64
}
