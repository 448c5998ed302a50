package list_slots

import (
	"context"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/service/slots/models"
)

type SlotService interface {
	ListByDate(ctx context.Context, date time.Time) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
