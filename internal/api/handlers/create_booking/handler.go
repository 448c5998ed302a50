package create_booking

import (
	"errors"
	"net/http"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	createBooking "github.com/glashaus-studio/GH-VisitService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNoSlotDefined      = "на выбранные дату и время нет определённого слота"
	msgDayBlocked         = "выбранная дата закрыта для посещений"
	msgCapacityExceeded   = "недостаточно мест на выбранное время"
	msgOutsideHours       = "визит не помещается в часы работы"
	msgInvalidDate        = "некорректная дата визита"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
	// allowOverride включает adminOverride: true только на административном маршруте
	allowOverride bool
}

func NewHandler(useCase CreateBookingUseCase, logger Logger, allowOverride bool) *Handler {
	return &Handler{
		useCase:       useCase,
		logger:        logger,
		allowOverride: allowOverride,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.allowOverride)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoSlotDefined):
			h.logger.Warn("POST /bookings - No slot defined: %v", err)
			handlers.RespondNotFound(w, msgNoSlotDefined)

		case errors.Is(err, createBooking.ErrDayBlocked):
			h.logger.Warn("POST /bookings - Day blocked: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgDayBlocked)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: %v", err)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Visit created: visit_id=%d, date=%s, start=%s, party=%d",
		result.ID, result.VisitDate.Format("2006-01-02"), result.StartTime, result.PartySize)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
