package validate_booking

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	createBooking "github.com/glashaus-studio/GH-VisitService/internal/usecase/create_booking"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// ValidateBookingRequest HTTP request model, та же форма, что и при создании
type ValidateBookingRequest struct {
	SlotID    *int64 `json:"slotId,omitempty"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	VisitType string `json:"visitType,omitempty"`

	PartySize    int    `json:"partySize"`
	CustomerName string `json:"customerName,omitempty"`
}

// ValidationResponse HTTP response model
type ValidationResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Имя клиента для проверки не обязательно, подставляем заглушку
	customerName := r.CustomerName
	if customerName == "" {
		customerName = "validation"
	}

	req := &createBooking.Request{
		SlotID:       r.SlotID,
		VisitType:    domain.VisitType(r.VisitType),
		PartySize:    r.PartySize,
		CustomerName: customerName,
	}

	if r.SlotID == nil {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		req.Date = date
		req.StartTime = startTime
	}

	return req, nil
}
