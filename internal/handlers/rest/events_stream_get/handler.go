package events_stream_get

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"agroflow/internal/pkg/middlewares/identity"
	"agroflow/pkg/logger"
	"agroflow/pkg/pubsub"
)

const keepAliveInterval = 30 * time.Second

// Handler отдаёт события подписчику по Server-Sent Events. Буфер подписки
// ограничен, отставший клиент теряет события вместо блокировки рассылки.
type Handler struct {
	log        handlerLogger
	subscriber Subscriber
}

func New(log handlerLogger, subscriber Subscriber) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		subscriber: subscriber,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.log.Error("response writer does not support streaming")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sub := h.subscriber.SubscribeActor(actor)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.log.With(
		logger.NewField("actor", actor.ID),
		logger.NewField("role", actor.Role.String()),
	).Info("event stream opened")

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.log.With(
				logger.NewField("actor", actor.ID),
			).Info("event stream closed by client")
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case event, open := <-sub.Events():
			if !open {
				return
			}
			if err := writeEvent(w, event); err != nil {
				h.log.With(
					logger.NewField("actor", actor.ID),
					logger.NewField("error", err),
				).Warn("write event to stream")
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event pubsub.Event) error {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, data)
	return err
}
