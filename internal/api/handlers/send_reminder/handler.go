package send_reminder

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	"github.com/glashaus-studio/GH-VisitService/internal/service/visits"
)

const (
	msgInvalidVisitID = "некорректный ID визита"
	msgNotFound       = "визит не найден"
	msgInvalidInput   = "напоминание недоступно для этого визита"
	msgDeliveryFailed = "не удалось доставить напоминание"
)

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{visitId}/reminder
//
// Отправка синхронная: в отличие от уведомлений о создании и отмене,
// здесь доставка и есть смысл запроса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reminder - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	if err := h.service.SendReminder(r.Context(), visitID); err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("POST /bookings/{id}/reminder - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reminder - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, visits.ErrReminderFailed):
			h.logger.Error("POST /bookings/{id}/reminder - Delivery failed: visit_id=%d, error=%v", visitID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDeliveryFailed)

		default:
			h.logger.Error("POST /bookings/{id}/reminder - Failed: visit_id=%d, error=%v", visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reminder - Reminder sent: visit_id=%d", visitID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
