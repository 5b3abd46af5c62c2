package delivery_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"agroflow/internal/entities"
	deliveryservice "agroflow/internal/service/delivery"
	"agroflow/pkg/logger"
)

type createdEvent struct {
	DeliveryID       string     `json:"deliveryId"`
	FarmerID         string     `json:"farmerId"`
	WarehouseID      *string    `json:"warehouseId,omitempty"`
	GoodsDescription string     `json:"goodsDescription"`
	Quantity         float64    `json:"quantity"`
	Urgency          *string    `json:"urgency,omitempty"`
	Pickup           *point     `json:"pickup,omitempty"`
	Dropoff          *point     `json:"dropoff,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
}

type point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("delivery.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("delivery.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("farmer", event.FarmerID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.created processing")

	accepted, err := h.deliveryService.AcceptPending(ctx, toNewDelivery(event))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.created handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, deliveryservice.ErrMissingRequiredFields),
			errors.Is(err, deliveryservice.ErrInvalidQuantity),
			errors.Is(err, deliveryservice.ErrInvalidUrgency),
			errors.Is(err, deliveryservice.ErrInvalidCoordinates):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.created handler rejected malformed event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.created handler failed to accept delivery")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("delivery", accepted.ID),
		logger.NewField("status", accepted.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("delivery.created: accepted")

	sess.MarkMessage(message, "")
	return false
}

func toNewDelivery(event createdEvent) entities.NewDelivery {
	nd := entities.NewDelivery{
		FarmerID:         event.FarmerID,
		WarehouseID:      event.WarehouseID,
		GoodsDescription: event.GoodsDescription,
		Quantity:         event.Quantity,
		Pickup:           toCoordinates(event.Pickup),
		Dropoff:          toCoordinates(event.Dropoff),
		CreatedAt:        event.CreatedAt,
	}
	if event.DeliveryID != "" {
		id := event.DeliveryID
		nd.ID = &id
	}
	if event.Urgency != nil {
		urgency := entities.UrgencyType(*event.Urgency)
		nd.Urgency = &urgency
	}
	return nd
}

func toCoordinates(p *point) *entities.Coordinates {
	if p == nil {
		return nil
	}
	return &entities.Coordinates{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Address:   p.Address,
	}
}
