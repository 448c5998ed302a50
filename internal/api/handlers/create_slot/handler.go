package create_slot

import (
	"errors"
	"net/http"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	"github.com/glashaus-studio/GH-VisitService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgDuplicate          = "слот на эти дату и время уже существует"
	msgInvalidInput       = "некорректные данные слота"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrDuplicateSlot):
			h.logger.Warn("POST /admin/slots - Duplicate slot: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgDuplicate)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: slot_id=%d, date=%s, start=%s",
		result.ID, result.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
