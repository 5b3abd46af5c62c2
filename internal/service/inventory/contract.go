//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
package inventory

import (
	"context"

	"agroflow/internal/entities"
)

type Repository interface {
	// RecordAdjustment вставляет строку идемпотентного журнала. Возвращает false,
	// если корректировка по этой доставке уже была применена.
	RecordAdjustment(ctx context.Context, adjustment entities.InventoryAdjustment) (bool, error)

	ApplyAdjustment(ctx context.Context, ownerID, itemName string, delta float64, location string) (*entities.InventoryRecord, error)
	GetRecord(ctx context.Context, ownerID, itemName string) (*entities.InventoryRecord, error)

	// ListUnappliedDeliveries возвращает delivered-доставки без строки журнала.
	ListUnappliedDeliveries(ctx context.Context, limit int) ([]entities.Delivery, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
