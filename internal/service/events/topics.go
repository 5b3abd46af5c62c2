package events

import (
	"agroflow/internal/entities"
)

const (
	TopicAdmin        = "admin"
	TopicTransporters = "transporters"
	TopicWarehouses   = "warehouses"

	farmerTopicPrefix = "farmer/"
)

func FarmerTopic(farmerID string) string {
	return farmerTopicPrefix + farmerID
}

// TopicsForActor — область интереса подписчика по роли и владению:
// фермер видит только свои доставки и инвентарь, транспортёр — события
// по парку, менеджер склада — складские, admin — всё.
func TopicsForActor(actor entities.Actor) []string {
	switch actor.Role {
	case entities.RoleFarmer:
		return []string{FarmerTopic(actor.ID)}
	case entities.RoleTransporter:
		return []string{TopicTransporters}
	case entities.RoleWarehouseManager:
		return []string{TopicWarehouses}
	case entities.RoleAdmin:
		return []string{TopicAdmin}
	default:
		return nil
	}
}
