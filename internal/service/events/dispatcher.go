package events

import (
	"context"
	"encoding/json"
	"time"

	"agroflow/internal/entities"
	"agroflow/pkg/logger"
	"agroflow/pkg/pubsub"
)

const (
	subscriberBuffer = 16
	queueBuffer      = 256

	streamPublishTimeout = 5 * time.Second
)

type notification struct {
	delivery  *entities.Delivery
	inventory *entities.InventoryRecord
}

// Dispatcher раскладывает закоммиченные изменения по темам живых подписчиков
// и публикует их downstream в Kafka. Очередь с одним потребителем сохраняет
// порядок коммитов для каждого подписчика; постановка в очередь неблокирующая,
// поэтому медленный подписчик не тормозит путь записи.
type Dispatcher struct {
	log    handlerLogger
	hub    Hub
	stream StreamPublisher
	queue  chan notification
}

func New(ctx context.Context, log handlerLogger, hub Hub, stream StreamPublisher) *Dispatcher {
	d := &Dispatcher{
		log:    log.With(),
		hub:    hub,
		stream: stream,
		queue:  make(chan notification, queueBuffer),
	}

	go d.drain(ctx)

	return d
}

// DeliveryCommitted вызывается Transition Authority после фиксации
// транзакции. Не блокирует: при переполненной очереди уведомление
// отбрасывается (at-most-once).
func (d *Dispatcher) DeliveryCommitted(delivery *entities.Delivery, inventory *entities.InventoryRecord) {
	if delivery == nil {
		return
	}

	select {
	case d.queue <- notification{delivery: delivery, inventory: inventory}:
	default:
		EventsDroppedTotal.WithLabelValues(entities.EventDeliveryUpdated.String()).Inc()
		d.log.Warn("event queue full, dropping notification",
			logger.NewField("delivery", delivery.ID),
		)
	}
}

// SubscribeActor регистрирует живого подписчика с темами по его роли.
func (d *Dispatcher) SubscribeActor(actor entities.Actor) *pubsub.Subscription {
	return d.hub.Subscribe(subscriberBuffer, TopicsForActor(actor)...)
}

func (d *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.dispatch(ctx, n)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, n notification) {
	now := time.Now().UTC()

	updated := entities.DeliveryUpdatedEvent{
		Type:       entities.EventDeliveryUpdated,
		DeliveryID: n.delivery.ID,
		FarmerID:   n.delivery.FarmerID,
		Status:     n.delivery.Status,
		Version:    n.delivery.Version,
		Timestamp:  now,
	}
	d.publishStream(ctx, n.delivery.ID, updated.Type, updated)

	if n.delivery.Status == entities.DeliveryDelivered {
		completed := entities.DeliveryCompletedEvent{
			Type:          entities.EventDeliveryCompleted,
			DeliveryID:    n.delivery.ID,
			FarmerID:      n.delivery.FarmerID,
			TransporterID: n.delivery.TransporterID,
			Timestamp:     now,
		}
		d.publishLive(completed.Type, completed,
			FarmerTopic(n.delivery.FarmerID),
			TopicTransporters,
			TopicWarehouses,
			TopicAdmin,
		)
		d.publishStream(ctx, n.delivery.ID, completed.Type, completed)
	}

	if n.inventory != nil {
		invEvent := entities.InventoryUpdatedEvent{
			Type:      entities.EventInventoryUpdated,
			OwnerID:   n.inventory.OwnerID,
			ItemName:  n.inventory.ItemName,
			Quantity:  n.inventory.Quantity,
			Location:  n.inventory.Location,
			Timestamp: now,
		}
		d.publishLive(invEvent.Type, invEvent,
			FarmerTopic(n.inventory.OwnerID),
			TopicAdmin,
		)
		d.publishStream(ctx, n.inventory.OwnerID, invEvent.Type, invEvent)
	}
}

func (d *Dispatcher) publishLive(kind entities.EventKind, payload interface{}, topics ...string) {
	for _, topic := range topics {
		delivered, dropped := d.hub.Publish(topic, kind.String(), payload)
		if delivered > 0 {
			EventsPublishedTotal.WithLabelValues(kind.String()).Add(float64(delivered))
		}
		if dropped > 0 {
			EventsDroppedTotal.WithLabelValues(kind.String()).Add(float64(dropped))
			d.log.Warn("slow subscriber, events dropped",
				logger.NewField("topic", topic),
				logger.NewField("kind", kind.String()),
				logger.NewField("dropped", dropped),
			)
		}
	}
}

func (d *Dispatcher) publishStream(ctx context.Context, key string, kind entities.EventKind, payload interface{}) {
	if d.stream == nil {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		d.log.Error("marshal downstream event",
			logger.NewField("kind", kind.String()),
			logger.NewField("error", err),
		)
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, streamPublishTimeout)
	defer cancel()

	if err := d.stream.Publish(publishCtx, key, value); err != nil {
		StreamPublishErrorsTotal.WithLabelValues(kind.String()).Inc()
		d.log.Error("publish downstream event",
			logger.NewField("kind", kind.String()),
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
	}
}
