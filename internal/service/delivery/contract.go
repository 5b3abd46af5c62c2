//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"agroflow/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	List(ctx context.Context, scope entities.DeliveryScope) ([]entities.Delivery, error)

	// Create вставляет pending-запись с version = 0. Возвращает false, если
	// доставка с таким id уже существует.
	Create(ctx context.Context, d *entities.Delivery) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
