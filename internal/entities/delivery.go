package entities

import "time"

type Delivery struct {
	ID               string
	FarmerID         string
	TransporterID    *string
	WarehouseID      *string
	Status           DeliveryStatusType
	GoodsDescription string
	Quantity         float64
	Urgency          UrgencyType
	Pickup           *Coordinates
	Dropoff          *Coordinates
	CreatedAt        time.Time
	AssignedAt       *time.Time
	InTransitAt      *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	Version          int64
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

// IsTerminal: из delivered и cancelled переходов нет.
func (t DeliveryStatusType) IsTerminal() bool {
	return t == DeliveryDelivered || t == DeliveryCancelled
}

type UrgencyType string

const (
	UrgencyLow    UrgencyType = "low"
	UrgencyNormal UrgencyType = "normal"
	UrgencyHigh   UrgencyType = "high"
)

const DefaultUrgencyType = UrgencyNormal

func (t UrgencyType) String() string {
	return string(t)
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
	Address   string
}

type RouteDescriptor struct {
	Pickup     Coordinates
	Dropoff    Coordinates
	DistanceKm float64
	ETAMinutes float64
}

// DeliveryCommit — полезная нагрузка атомарного compare-and-set перехода статуса.
type DeliveryCommit struct {
	ID              string
	ExpectedVersion int64
	Status          DeliveryStatusType
	StampedAt       time.Time
	TransporterID   *string
}

// DeliveryScope ограничивает видимость списка доставок по роли и владению.
// Непустые поля объединяются через OR с IncludePending.
type DeliveryScope struct {
	FarmerID       *string
	TransporterID  *string
	WarehouseID    *string
	IncludePending bool
	All            bool
}

// NewDelivery описывает входящую pending-запись от внешнего сервиса создания.
type NewDelivery struct {
	ID               *string
	FarmerID         string
	WarehouseID      *string
	GoodsDescription string
	Quantity         float64
	Urgency          *UrgencyType
	Pickup           *Coordinates
	Dropoff          *Coordinates
	CreatedAt        *time.Time
}
