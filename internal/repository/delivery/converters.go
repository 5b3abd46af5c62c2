package delivery

import "agroflow/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:               d.ID,
		FarmerID:         d.FarmerID,
		TransporterID:    d.TransporterID,
		WarehouseID:      d.WarehouseID,
		Status:           entities.DeliveryStatusType(d.Status),
		GoodsDescription: d.GoodsDescription,
		Quantity:         d.Quantity,
		Urgency:          entities.UrgencyType(d.Urgency),
		Pickup:           toCoordinates(d.PickupLat, d.PickupLon, d.PickupAddress),
		Dropoff:          toCoordinates(d.DropoffLat, d.DropoffLon, d.DropoffAddress),
		CreatedAt:        d.CreatedAt,
		AssignedAt:       d.AssignedAt,
		InTransitAt:      d.InTransitAt,
		DeliveredAt:      d.DeliveredAt,
		CancelledAt:      d.CancelledAt,
		Version:          d.Version,
	}
}

// toCoordinates собирает координаты только когда обе составляющие заданы.
func toCoordinates(lat, lon *float64, address *string) *entities.Coordinates {
	if lat == nil || lon == nil {
		return nil
	}
	c := &entities.Coordinates{
		Latitude:  *lat,
		Longitude: *lon,
	}
	if address != nil {
		c.Address = *address
	}
	return c
}

func fromCoordinates(c *entities.Coordinates) (lat, lon *float64, address *string) {
	if c == nil {
		return nil, nil, nil
	}
	latVal := c.Latitude
	lonVal := c.Longitude
	addrVal := c.Address
	return &latVal, &lonVal, &addrVal
}
