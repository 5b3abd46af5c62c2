package delivery

import (
	"strings"

	"agroflow/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidUrgency(urgency entities.UrgencyType) bool {
	switch urgency {
	case entities.UrgencyLow, entities.UrgencyNormal, entities.UrgencyHigh:
		return true
	default:
		return false
	}
}

func isValidCoordinates(c *entities.Coordinates) bool {
	if c == nil {
		return true
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
