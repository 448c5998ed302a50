package update_party_size

import (
	"context"

	"github.com/glashaus-studio/GH-VisitService/internal/service/visits/models"
)

type VisitService interface {
	UpdatePartySize(ctx context.Context, req *models.UpdatePartySizeRequest) (*models.VisitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
