package transition

import "agroflow/internal/entities"

// Граф допустимых переходов. Направленный, без циклов:
// pending -> assigned -> in_transit -> delivered,
// pending/assigned -> cancelled. delivered и cancelled терминальны.
var transitionGraph = map[entities.DeliveryStatusType][]entities.DeliveryStatusType{
	entities.DeliveryPending:   {entities.DeliveryAssigned, entities.DeliveryCancelled},
	entities.DeliveryAssigned:  {entities.DeliveryInTransit, entities.DeliveryCancelled},
	entities.DeliveryInTransit: {entities.DeliveryDelivered},
}

func edgeAllowed(from, to entities.DeliveryStatusType) bool {
	for _, next := range transitionGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}
