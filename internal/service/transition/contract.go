//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_test
package transition

import (
	"context"

	"agroflow/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)

	// CommitTransition выполняет единственный атомарный compare-and-set по version.
	// Возвращает ErrConflict при несовпадении version и ErrNotFound для неизвестного id.
	CommitTransition(ctx context.Context, commit entities.DeliveryCommit) (*entities.Delivery, error)
}

type InventorySynchronizer interface {
	ApplyDeliveryAdjustment(ctx context.Context, d *entities.Delivery) (*entities.InventoryRecord, error)
}

type EventDispatcher interface {
	// DeliveryCommitted вызывается после фиксации транзакции; никогда не блокирует
	// и не возвращает ошибку в путь записи.
	DeliveryCommitted(d *entities.Delivery, inv *entities.InventoryRecord)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
