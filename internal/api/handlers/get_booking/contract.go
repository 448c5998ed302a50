package get_booking

import (
	"context"

	"github.com/glashaus-studio/GH-VisitService/internal/service/visits/models"
)

type VisitService interface {
	GetByID(ctx context.Context, id int64) (*models.VisitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
