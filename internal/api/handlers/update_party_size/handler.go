package update_party_size

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	"github.com/glashaus-studio/GH-VisitService/internal/service/visits"
	"github.com/glashaus-studio/GH-VisitService/internal/service/visits/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVisitID     = "некорректный ID визита"
	msgNotFound           = "визит не найден"
	msgCapacityExceeded   = "недостаточно мест для нового размера группы"
	msgInvalidInput       = "некорректный размер группы"
)

type Handler struct {
	service VisitService
	logger  Logger
	// allowForce включает force: true только на административном маршруте
	allowForce bool
}

func NewHandler(service VisitService, logger Logger, allowForce bool) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		allowForce: allowForce,
	}
}

// Handle PATCH /api/v1/bookings/{visitId}/party-size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/party-size - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	var req UpdatePartySizeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/party-size - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePartySize(r.Context(), &models.UpdatePartySizeRequest{
		VisitID:   visitID,
		PartySize: req.PartySize,
		Force:     req.Force && h.allowForce,
	})
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("PATCH /bookings/{id}/party-size - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, visits.ErrCapacityExceeded):
			h.logger.Warn("PATCH /bookings/{id}/party-size - Capacity exceeded: visit_id=%d, size=%d",
				visitID, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/party-size - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/party-size - Failed: visit_id=%d, error=%v", visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/party-size - Visit resized: visit_id=%d, size=%d",
		visitID, result.PartySize)
	handlers.RespondJSON(w, http.StatusOK, result)
}
