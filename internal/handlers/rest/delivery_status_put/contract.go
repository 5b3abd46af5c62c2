//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_put_test
package delivery_status_put

import (
	"context"

	"agroflow/internal/entities"
	"agroflow/internal/service/transition"
	"agroflow/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Transition(ctx context.Context, req transition.TransitionRequest) (*entities.Delivery, error)
}
