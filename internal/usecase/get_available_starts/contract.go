package get_available_starts

import (
	"context"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByDay(ctx context.Context, filter domain.DayVisitsFilter) ([]*domain.Visit, error)
}

// BlockRepository интерфейс репозитория административных блокировок
type BlockRepository interface {
	GetCovering(ctx context.Context, day time.Time) ([]*domain.DayBlock, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
