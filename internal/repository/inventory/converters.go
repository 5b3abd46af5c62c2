package inventory

import "agroflow/internal/entities"

func ToDomain(r *InventoryRecordDB) *entities.InventoryRecord {
	if r == nil {
		return nil
	}
	return &entities.InventoryRecord{
		OwnerID:   r.OwnerID,
		ItemName:  r.ItemName,
		Quantity:  r.Quantity,
		Location:  r.Location,
		UpdatedAt: r.UpdatedAt,
	}
}
