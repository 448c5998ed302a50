package create_block

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/internal/service/blocks/models"
)

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	Scope  string  `json:"scope"` // "date" | "month"
	Date   string  `json:"date"`  // "2026-09-14"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockRequest) ToServiceRequest() (*models.CreateBlockRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockRequest{
		Scope:  r.Scope,
		Date:   date,
		Reason: r.Reason,
	}, nil
}
