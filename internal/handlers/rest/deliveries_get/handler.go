package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"agroflow/internal/handlers/rest/dto"
	"agroflow/internal/pkg/middlewares/identity"
	"agroflow/internal/service/delivery"
	"agroflow/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveries, err := h.service.ListForActor(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidRole):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveriesResponse{
		Deliveries: make([]dto.Delivery, 0, len(deliveries)),
	}
	for _, d := range deliveries {
		response.Deliveries = append(response.Deliveries, dto.FromDelivery(d))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
