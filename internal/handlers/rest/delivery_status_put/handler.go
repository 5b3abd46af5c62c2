package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"agroflow/internal/entities"
	"agroflow/internal/handlers/rest/dto"
	"agroflow/internal/pkg/middlewares/identity"
	"agroflow/internal/service/transition"
	"agroflow/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	validate *validator.Validate
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var updateDTO dto.DeliveryStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "validation")
		return
	}
	if err := h.validate.Struct(updateDTO); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation")
		return
	}

	req := transition.TransitionRequest{
		DeliveryID:      mux.Vars(r)["id"],
		Requested:       entities.DeliveryStatusType(updateDTO.Status),
		Actor:           actor,
		ExpectedVersion: updateDTO.ExpectedVersion,
		TransporterID:   updateDTO.TransporterID,
	}

	updated, err := h.service.Transition(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, transition.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error(), "validation")
		case errors.Is(err, transition.ErrInvalidTransition):
			writeError(w, http.StatusBadRequest, err.Error(), "invalid_transition")
		case errors.Is(err, transition.ErrForbidden):
			writeError(w, http.StatusForbidden, err.Error(), "forbidden")
		case errors.Is(err, transition.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error(), "not_found")
		case errors.Is(err, transition.ErrConflict):
			writeError(w, http.StatusConflict, err.Error(), "conflict")
		case errors.Is(err, transition.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, "storage is unavailable, try again later", "unavailable")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromDelivery(*updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
