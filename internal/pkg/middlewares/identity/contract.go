package identity

import (
	"context"

	"agroflow/internal/entities"
	"agroflow/pkg/logger"
)

type Resolver interface {
	Resolve(ctx context.Context, token string) (*entities.Actor, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
