package blocks

import (
	"context"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
)

// BlockRepository интерфейс репозитория административных блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error)
	GetRange(ctx context.Context, from, to time.Time) ([]*domain.DayBlock, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
