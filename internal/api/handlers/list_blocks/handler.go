package list_blocks

import (
	"errors"
	"net/http"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/internal/service/blocks"
	"github.com/glashaus-studio/GH-VisitService/internal/service/blocks/models"
)

const (
	msgInvalidDate  = "некорректный формат дат, ожидается from=YYYY-MM-DD&to=YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/blocks?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, q.Get("from"))
	if err != nil {
		h.logger.Warn("GET /admin/blocks - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /admin/blocks - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListBlocksRequest{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/blocks - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
