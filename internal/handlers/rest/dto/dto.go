// Package dto содержит типы запросов и ответов REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address,omitempty"`
}

type Delivery struct {
	ID               string       `json:"id"`
	FarmerID         string       `json:"farmerId"`
	TransporterID    *string      `json:"transporterId,omitempty"`
	WarehouseID      *string      `json:"warehouseId,omitempty"`
	Status           string       `json:"status"`
	GoodsDescription string       `json:"goodsDescription"`
	Quantity         float64      `json:"quantity"`
	Urgency          string       `json:"urgency"`
	Pickup           *Coordinates `json:"pickup,omitempty"`
	Dropoff          *Coordinates `json:"dropoff,omitempty"`
	Version          int64        `json:"version"`
	CreatedAt        time.Time    `json:"createdAt"`
	AssignedAt       *time.Time   `json:"assignedAt,omitempty"`
	InTransitAt      *time.Time   `json:"inTransitAt,omitempty"`
	DeliveredAt      *time.Time   `json:"deliveredAt,omitempty"`
	CancelledAt      *time.Time   `json:"cancelledAt,omitempty"`
}

type DeliveriesResponse struct {
	Deliveries []Delivery `json:"deliveries"`
}

type DeliveryStatusUpdate struct {
	Status          string  `json:"status" validate:"required"`
	TransporterID   *string `json:"transporterId,omitempty"`
	ExpectedVersion *int64  `json:"expectedVersion,omitempty" validate:"omitempty,gte=0"`
}

type RoutePoint struct {
	Coordinates Coordinates `json:"coordinates"`
}

type Route struct {
	Pickup     RoutePoint `json:"pickup"`
	Delivery   RoutePoint `json:"delivery"`
	DistanceKm float64    `json:"distanceKm"`
	EtaMinutes float64    `json:"etaMinutes"`
}

type RouteResponse struct {
	Success bool    `json:"success"`
	Route   *Route  `json:"route,omitempty"`
	Error   *string `json:"error,omitempty"`
}
