package delivery_route_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"

	"agroflow/internal/entities"
	"agroflow/internal/handlers/rest/dto"
	"agroflow/internal/service/route"
	"agroflow/internal/service/transition"
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
	descriptor, err := h.service.Resolve(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidDeliveryID):
			h.writeFailure(w, http.StatusBadRequest, "invalid delivery id")
		case errors.Is(err, transition.ErrNotFound):
			h.writeFailure(w, http.StatusNotFound, "delivery not found")
		case errors.Is(err, route.ErrMissingCoordinates):
			h.writeFailure(w, http.StatusUnprocessableEntity, "missing coordinates")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RouteResponse{
		Success: true,
		Route: &dto.Route{
			Pickup:     routePoint(descriptor.Pickup),
			Delivery:   routePoint(descriptor.Dropoff),
			DistanceKm: descriptor.DistanceKm,
			EtaMinutes: descriptor.ETAMinutes,
		},
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

func routePoint(c entities.Coordinates) dto.RoutePoint {
	point := dto.RoutePoint{
		Coordinates: dto.Coordinates{
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		},
	}
	if c.Address != "" {
		point.Coordinates.Address = pointer.To(c.Address)
	}
	return point
}

func (h *Handler) writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.RouteResponse{
		Success: false,
		Error:   pointer.To(message),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
