package create_booking

import (
	"context"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	GetByDay(ctx context.Context, filter domain.DayVisitsFilter) ([]*domain.Visit, error)
}

// SlotRepository интерфейс репозитория предопределённых слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByDateTime(ctx context.Context, date time.Time, start types.TimeString, visitType domain.VisitType) (*domain.Slot, error)
}

// BlockRepository интерфейс репозитория административных блокировок
type BlockRepository interface {
	GetCovering(ctx context.Context, day time.Time) ([]*domain.DayBlock, error)
}

// SettingsRepository интерфейс репозитория настроек (базовые цены)
type SettingsRepository interface {
	GetPrice(ctx context.Context, visitType domain.VisitType) (float64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки best-effort уведомлений
type Notifier interface {
	VisitConfirmed(visit *domain.Visit)
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
