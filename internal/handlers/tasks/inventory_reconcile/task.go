package inventory_reconcile

import (
	"context"
	"time"

	"agroflow/pkg/logger"
)

type Service interface {
	ReconcileUnapplied(ctx context.Context, limit int) (int64, error)
}

// InventoryReconcile дожимает складские корректировки для delivered-доставок,
// у которых нет записи в журнале. В штатном режиме выборка пуста.
type InventoryReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	batch    int
}

func NewInventoryReconcile(log logger.Logger, service Service, interval time.Duration, batch int) *InventoryReconcile {
	return &InventoryReconcile{
		log:      log,
		service:  service,
		interval: interval,
		batch:    batch,
	}
}

func (t *InventoryReconcile) TTL() time.Duration {
	return t.interval
}

func (t *InventoryReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	reconciled, err := t.service.ReconcileUnapplied(ctxWithTimeout, t.batch)

	if reconciled > 0 {
		t.log.With(
			logger.NewField("reconciled_deliveries", reconciled),
		).Info("inventory reconcile")
	}

	return err
}

func (t *InventoryReconcile) Info() string {
	return "inventory reconcile"
}
