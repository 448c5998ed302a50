package set_price

import (
	"context"

	"github.com/glashaus-studio/GH-VisitService/internal/service/slots/models"
)

type SlotService interface {
	SetPrice(ctx context.Context, req *models.SetPriceRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
