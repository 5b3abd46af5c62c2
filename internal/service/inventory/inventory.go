package inventory

import (
	"context"
	"fmt"
	"time"

	"agroflow/internal/entities"
)

type Inventory struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Inventory {
	return &Inventory{
		repository: repository,
		txManager:  txManager,
	}
}

// ApplyDeliveryAdjustment применяет корректировку склада для delivered-доставки
// ровно один раз. Вызывается только внутри транзакции коммита перехода либо из
// задачи reconcile; собственную транзакцию не открывает, исполнитель берётся из
// контекста.
//
// Идемпотентность: сначала строка журнала с delivery_id в качестве ключа; если
// она уже есть, корректировка не применяется повторно.
func (s *Inventory) ApplyDeliveryAdjustment(ctx context.Context, d *entities.Delivery) (*entities.InventoryRecord, error) {
	if d == nil || d.Status != entities.DeliveryDelivered {
		return nil, ErrInvalidDelivery
	}
	if d.Quantity <= 0 {
		return nil, fmt.Errorf("non-positive quantity %f: %w", d.Quantity, ErrInvalidDelivery)
	}

	adjustment := entities.InventoryAdjustment{
		DeliveryID: d.ID,
		OwnerID:    d.FarmerID,
		ItemName:   d.GoodsDescription,
		Quantity:   d.Quantity,
		AppliedAt:  time.Now().UTC(),
	}

	inserted, err := s.repository.RecordAdjustment(ctx, adjustment)
	if err != nil {
		return nil, fmt.Errorf("record adjustment: %w", err)
	}

	if !inserted {
		// Уже применяли для этой доставки.
		record, err := s.repository.GetRecord(ctx, d.FarmerID, d.GoodsDescription)
		if err != nil {
			return nil, fmt.Errorf("get inventory record: %w", err)
		}
		return record, nil
	}

	location := ""
	if d.Dropoff != nil {
		location = d.Dropoff.Address
	}

	record, err := s.repository.ApplyAdjustment(ctx, d.FarmerID, d.GoodsDescription, d.Quantity, location)
	if err != nil {
		return nil, fmt.Errorf("apply adjustment: %w", err)
	}

	return record, nil
}

// ReconcileUnapplied догоняет корректировки для delivered-доставок без строки
// журнала. Каждая доставка обрабатывается в собственной транзакции, чтобы один
// отказ не откатывал остальные.
func (s *Inventory) ReconcileUnapplied(ctx context.Context, limit int) (int64, error) {
	deliveries, err := s.repository.ListUnappliedDeliveries(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list unapplied deliveries: %w", err)
	}

	var applied int64
	for i := range deliveries {
		d := deliveries[i]
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			_, err := s.ApplyDeliveryAdjustment(ctx, &d)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("reconcile delivery %s: %w", d.ID, err)
		}
		applied++
	}

	return applied, nil
}
