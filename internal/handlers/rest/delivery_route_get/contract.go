//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_route_get_test
package delivery_route_get

import (
	"context"

	"agroflow/internal/entities"
	"agroflow/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Resolve(ctx context.Context, deliveryID string) (*entities.RouteDescriptor, error)
}
