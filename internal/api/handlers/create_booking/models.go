package create_booking

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	createBooking "github.com/glashaus-studio/GH-VisitService/internal/usecase/create_booking"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Либо slotId, либо тройка date+startTime+visitType.
type CreateBookingRequest struct {
	SlotID    *int64 `json:"slotId,omitempty"`
	Date      string `json:"date,omitempty"`      // "2026-09-14"
	StartTime string `json:"startTime,omitempty"` // "10:00"
	VisitType string `json:"visitType,omitempty"` // "sightseeing" | "workshop"

	PartySize     int     `json:"partySize"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	// adminOverride учитывается только на административном маршруте
	AdminOverride bool `json:"adminOverride,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	VisitDate       string  `json:"visitDate"`
	StartTime       string  `json:"startTime"`
	VisitType       string  `json:"visitType"`
	DurationMinutes int     `json:"durationMinutes"`
	PartySize       int     `json:"partySize"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(allowOverride bool) (*createBooking.Request, error) {
	req := &createBooking.Request{
		SlotID:        r.SlotID,
		VisitType:     domain.VisitType(r.VisitType),
		PartySize:     r.PartySize,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		AdminOverride: r.AdminOverride && allowOverride,
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		VisitDate:       resp.VisitDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		VisitType:       string(resp.VisitType),
		DurationMinutes: resp.DurationMinutes,
		PartySize:       resp.PartySize,
		Status:          resp.Status,
		Price:           resp.Price,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
