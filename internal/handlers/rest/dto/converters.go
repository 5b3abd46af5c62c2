package dto

import (
	"agroflow/internal/entities"
)

func FromDelivery(d entities.Delivery) Delivery {
	return Delivery{
		ID:               d.ID,
		FarmerID:         d.FarmerID,
		TransporterID:    d.TransporterID,
		WarehouseID:      d.WarehouseID,
		Status:           d.Status.String(),
		GoodsDescription: d.GoodsDescription,
		Quantity:         d.Quantity,
		Urgency:          d.Urgency.String(),
		Pickup:           fromCoordinates(d.Pickup),
		Dropoff:          fromCoordinates(d.Dropoff),
		Version:          d.Version,
		CreatedAt:        d.CreatedAt,
		AssignedAt:       d.AssignedAt,
		InTransitAt:      d.InTransitAt,
		DeliveredAt:      d.DeliveredAt,
		CancelledAt:      d.CancelledAt,
	}
}

func fromCoordinates(c *entities.Coordinates) *Coordinates {
	if c == nil {
		return nil
	}
	coords := Coordinates{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
	if c.Address != "" {
		coords.Address = &c.Address
	}
	return &coords
}
