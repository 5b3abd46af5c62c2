//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"context"

	"agroflow/pkg/logger"
	"agroflow/pkg/pubsub"
)

type Hub interface {
	Subscribe(buffer int, topics ...string) *pubsub.Subscription
	Publish(topic, kind string, payload interface{}) (delivered, dropped int)
}

// StreamPublisher отправляет событие downstream-системам (Kafka).
type StreamPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
