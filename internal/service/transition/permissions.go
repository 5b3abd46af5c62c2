package transition

import "agroflow/internal/entities"

type edge struct {
	from entities.DeliveryStatusType
	to   entities.DeliveryStatusType
}

// condition уточняет владение поверх роли; nil-безопасные чистые функции.
type condition func(d *entities.Delivery, actor entities.Actor) bool

func anyActor(_ *entities.Delivery, _ entities.Actor) bool {
	return true
}

func isOwnerFarmer(d *entities.Delivery, actor entities.Actor) bool {
	return d.FarmerID == actor.ID
}

func isAssignedTransporter(d *entities.Delivery, actor entities.Actor) bool {
	return d.TransporterID != nil && *d.TransporterID == actor.ID
}

// permissionMatrix — декларативная таблица (роль × переход) -> условие.
// Единственный источник правды для авторизации переходов; delivered и
// cancelled терминальны для всех ролей, включая admin.
var permissionMatrix = map[edge]map[entities.RoleType]condition{
	{entities.DeliveryPending, entities.DeliveryAssigned}: {
		entities.RoleWarehouseManager: anyActor,
		entities.RoleAdmin:            anyActor,
	},
	{entities.DeliveryAssigned, entities.DeliveryInTransit}: {
		entities.RoleTransporter: isAssignedTransporter,
		entities.RoleAdmin:       anyActor,
	},
	{entities.DeliveryInTransit, entities.DeliveryDelivered}: {
		entities.RoleTransporter:      isAssignedTransporter,
		entities.RoleWarehouseManager: anyActor,
		entities.RoleAdmin:            anyActor,
	},
	{entities.DeliveryPending, entities.DeliveryCancelled}: {
		entities.RoleFarmer: isOwnerFarmer,
		entities.RoleAdmin:  anyActor,
	},
	{entities.DeliveryAssigned, entities.DeliveryCancelled}: {
		entities.RoleFarmer: isOwnerFarmer,
		entities.RoleAdmin:  anyActor,
	},
}

func transitionPermitted(d *entities.Delivery, requested entities.DeliveryStatusType, actor entities.Actor) bool {
	rules, ok := permissionMatrix[edge{from: d.Status, to: requested}]
	if !ok {
		return false
	}

	cond, ok := rules[actor.Role]
	if !ok {
		return false
	}
	return cond(d, actor)
}
