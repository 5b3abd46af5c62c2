//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_stream_get_test
package events_stream_get

import (
	"agroflow/internal/entities"
	"agroflow/pkg/logger"
	"agroflow/pkg/pubsub"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Subscriber interface {
	SubscribeActor(actor entities.Actor) *pubsub.Subscription
}
