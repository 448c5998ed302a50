package cancel_booking

import (
	"context"

	"github.com/glashaus-studio/GH-VisitService/internal/service/visits/models"
)

type VisitService interface {
	Cancel(ctx context.Context, req *models.CancelVisitRequest) (*models.VisitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
