package create_slot

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/internal/service/slots/models"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date          string   `json:"date"`      // "2026-09-14"
	StartTime     string   `json:"startTime"` // "10:00"
	VisitType     string   `json:"visitType"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest() (*models.CreateSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		Date:          date,
		StartTime:     startTime,
		VisitType:     domain.VisitType(r.VisitType),
		PriceOverride: r.PriceOverride,
	}, nil
}
