package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"agroflow/internal/entities"
	deliveryrepo "agroflow/internal/repository/delivery"
	"agroflow/internal/service/inventory"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// RecordAdjustment — журнал идемпотентности: delivery_id является первичным
// ключом, повторная вставка не проходит и означает уже применённую корректировку.
func (r *Repository) RecordAdjustment(ctx context.Context, adjustment entities.InventoryAdjustment) (bool, error) {
	query := `
		INSERT INTO inventory_adjustments (delivery_id, owner_id, item_name, quantity, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (delivery_id) DO NOTHING
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		adjustment.DeliveryID,
		adjustment.OwnerID,
		adjustment.ItemName,
		adjustment.Quantity,
		adjustment.AppliedAt,
	)
	if err != nil {
		return false, fmt.Errorf("unexpected inventory repository record adjustment error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ApplyAdjustment(ctx context.Context, ownerID, itemName string, delta float64, location string) (*entities.InventoryRecord, error) {
	query := `
		INSERT INTO inventory (owner_id, item_name, quantity, location, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (owner_id, item_name) DO UPDATE
		SET quantity = inventory.quantity + EXCLUDED.quantity,
		    updated_at = NOW()
		RETURNING owner_id, item_name, quantity, location, updated_at
	`

	var recordDB InventoryRecordDB
	err := r.querier.QueryRow(ctx, query, ownerID, itemName, delta, location).Scan(
		&recordDB.OwnerID,
		&recordDB.ItemName,
		&recordDB.Quantity,
		&recordDB.Location,
		&recordDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository apply adjustment error: %w", err)
	}

	return ToDomain(&recordDB), nil
}

func (r *Repository) GetRecord(ctx context.Context, ownerID, itemName string) (*entities.InventoryRecord, error) {
	query := `
		SELECT owner_id, item_name, quantity, location, updated_at
		FROM inventory
		WHERE owner_id = $1 AND item_name = $2
	`

	var recordDB InventoryRecordDB
	err := r.querier.QueryRow(ctx, query, ownerID, itemName).Scan(
		&recordDB.OwnerID,
		&recordDB.ItemName,
		&recordDB.Quantity,
		&recordDB.Location,
		&recordDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inventory.ErrRecordNotFound
		}
		return nil, fmt.Errorf("unexpected inventory repository get record error: %w", err)
	}

	return ToDomain(&recordDB), nil
}

// ListUnappliedDeliveries — delivered-доставки, для которых нет строки журнала.
func (r *Repository) ListUnappliedDeliveries(ctx context.Context, limit int) ([]entities.Delivery, error) {
	query := `
		SELECT d.id, d.farmer_id, d.transporter_id, d.warehouse_id, d.status, d.goods_description,
		       d.quantity, d.urgency, d.pickup_lat, d.pickup_lon, d.pickup_address,
		       d.dropoff_lat, d.dropoff_lon, d.dropoff_address,
		       d.created_at, d.assigned_at, d.in_transit_at, d.delivered_at, d.cancelled_at, d.version
		FROM deliveries d
		LEFT JOIN inventory_adjustments a ON a.delivery_id = d.id
		WHERE d.status = 'delivered'
		  AND a.delivery_id IS NULL
		ORDER BY d.delivered_at ASC
		LIMIT $1
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository list unapplied error: %w", err)
	}
	defer rows.Close()

	deliveries := make([]entities.Delivery, 0)
	for rows.Next() {
		var d deliveryrepo.DeliveryDB
		err := rows.Scan(
			&d.ID,
			&d.FarmerID,
			&d.TransporterID,
			&d.WarehouseID,
			&d.Status,
			&d.GoodsDescription,
			&d.Quantity,
			&d.Urgency,
			&d.PickupLat,
			&d.PickupLon,
			&d.PickupAddress,
			&d.DropoffLat,
			&d.DropoffLon,
			&d.DropoffAddress,
			&d.CreatedAt,
			&d.AssignedAt,
			&d.InTransitAt,
			&d.DeliveredAt,
			&d.CancelledAt,
			&d.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected inventory repository scan error: %w", err)
		}
		deliveries = append(deliveries, *deliveryrepo.ToDomain(&d))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected inventory repository rows error: %w", err)
	}

	return deliveries, nil
}
