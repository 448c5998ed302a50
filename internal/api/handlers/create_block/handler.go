package create_block

import (
	"errors"
	"net/http"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	"github.com/glashaus-studio/GH-VisitService/internal/service/blocks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDuplicate          = "блокировка на эту дату уже существует"
	msgInvalidInput       = "некорректные данные блокировки"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocks - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrDuplicateBlock):
			h.logger.Warn("POST /admin/blocks - Duplicate block: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDuplicate)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blocks - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks - Block created: block_id=%d, scope=%s, date=%s",
		result.ID, result.Scope, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
