package get_day_visits

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/internal/service/visits"
	"github.com/glashaus-studio/GH-VisitService/internal/service/visits/models"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
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

// Handle GET /api/v1/days/{date}/bookings?includeCancelled=true&visitType=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	day, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /days/{date}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetDayVisitsRequest{
		Day:              day,
		IncludeCancelled: r.URL.Query().Get("includeCancelled") == "true",
	}
	if vt := r.URL.Query().Get("visitType"); vt != "" {
		visitType := domain.VisitType(vt)
		req.VisitType = &visitType
	}

	result, err := h.service.GetDayVisits(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("GET /days/{date}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /days/{date}/bookings - Failed: day=%s, error=%v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
