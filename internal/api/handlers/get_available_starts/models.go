package get_available_starts

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	getAvailableStarts "github.com/glashaus-studio/GH-VisitService/internal/usecase/get_available_starts"
)

// AvailableStartsResponse HTTP response model
type AvailableStartsResponse struct {
	Date            string   `json:"date"`
	VisitType       string   `json:"visitType"`
	PartySize       int      `json:"partySize"`
	DurationMinutes int      `json:"durationMinutes"`
	Starts          []string `json:"starts"`
	DayBlocked      bool     `json:"dayBlocked"`
}

// toUseCaseRequest собирает модель use case из query-параметров
func toUseCaseRequest(dateStr, visitTypeStr, partySizeStr string) (*getAvailableStarts.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	partySize, err := parsePositiveInt(partySizeStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableStarts.Request{
		Date:      date,
		VisitType: domain.VisitType(visitTypeStr),
		PartySize: partySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableStarts.Response) *AvailableStartsResponse {
	starts := make([]string, 0, len(resp.Starts))
	for _, s := range resp.Starts {
		starts = append(starts, s.String())
	}

	return &AvailableStartsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		VisitType:       string(resp.VisitType),
		PartySize:       resp.PartySize,
		DurationMinutes: resp.DurationMinutes,
		Starts:          starts,
		DayBlocked:      resp.DayBlocked,
	}
}
