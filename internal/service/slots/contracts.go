package slots

import (
	"context"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository интерфейс репозитория настроек (базовые цены)
type SettingsRepository interface {
	GetPrice(ctx context.Context, visitType domain.VisitType) (float64, error)
	SetPrice(ctx context.Context, visitType domain.VisitType, price float64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
