package entities

import "time"

type EventKind string

const (
	EventInventoryUpdated  EventKind = "inventory_updated"
	EventDeliveryCompleted EventKind = "delivery_completed"
	EventDeliveryUpdated   EventKind = "delivery_updated"
)

func (k EventKind) String() string {
	return string(k)
}

type InventoryUpdatedEvent struct {
	Type      EventKind `json:"type"`
	OwnerID   string    `json:"ownerId"`
	ItemName  string    `json:"itemName"`
	Quantity  float64   `json:"quantity"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

type DeliveryCompletedEvent struct {
	Type          EventKind `json:"type"`
	DeliveryID    string    `json:"deliveryId"`
	FarmerID      string    `json:"farmerId"`
	TransporterID *string   `json:"transporterId"`
	Timestamp     time.Time `json:"timestamp"`
}

// DeliveryUpdatedEvent уходит в Kafka для downstream-систем на каждый
// закоммиченный переход, не только на завершение.
type DeliveryUpdatedEvent struct {
	Type       EventKind          `json:"type"`
	DeliveryID string             `json:"deliveryId"`
	FarmerID   string             `json:"farmerId"`
	Status     DeliveryStatusType `json:"status"`
	Version    int64              `json:"version"`
	Timestamp  time.Time          `json:"timestamp"`
}
