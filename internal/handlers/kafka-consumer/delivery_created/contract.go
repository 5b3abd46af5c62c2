package delivery_created

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
	AcceptPending(ctx context.Context, nd entities.NewDelivery) (*entities.Delivery, error)
}
