package get_day_visits

import (
	"context"

	"github.com/glashaus-studio/GH-VisitService/internal/service/visits/models"
)

type VisitService interface {
	GetDayVisits(ctx context.Context, req *models.GetDayVisitsRequest) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
