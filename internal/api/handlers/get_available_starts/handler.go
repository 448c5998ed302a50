package get_available_starts

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
	getAvailableStarts "github.com/glashaus-studio/GH-VisitService/internal/usecase/get_available_starts"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize = "некорректный размер группы"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableStartsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStartsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-starts?date=YYYY-MM-DD&visitType=...&partySize=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := toUseCaseRequest(q.Get("date"), q.Get("visitType"), q.Get("partySize"))
	if err != nil {
		h.logger.Warn("GET /available-starts - Failed to parse query: %v", err)
		if errors.Is(err, errInvalidPartySize) {
			handlers.RespondBadRequest(w, msgInvalidPartySize)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableStarts.ErrInvalidInput):
			h.logger.Warn("GET /available-starts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /available-starts - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

var errInvalidPartySize = errors.New("invalid party size")

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidPartySize, s)
	}
	return n, nil
}
