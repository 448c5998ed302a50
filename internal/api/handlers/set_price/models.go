package set_price

import (
	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/internal/service/slots/models"
)

// SetPriceRequest HTTP request model
type SetPriceRequest struct {
	VisitType string  `json:"visitType"`
	BasePrice float64 `json:"basePrice"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetPriceRequest) ToServiceRequest() *models.SetPriceRequest {
	return &models.SetPriceRequest{
		VisitType: domain.VisitType(r.VisitType),
		BasePrice: r.BasePrice,
	}
}
