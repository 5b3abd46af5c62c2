package transition

import (
	"strings"

	"agroflow/internal/entities"
)

func isValidDeliveryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryPending,
		entities.DeliveryAssigned,
		entities.DeliveryInTransit,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}

func isValidRole(role entities.RoleType) bool {
	switch role {
	case entities.RoleFarmer,
		entities.RoleTransporter,
		entities.RoleWarehouseManager,
		entities.RoleAdmin:
		return true
	default:
		return false
	}
}
