package visits

import (
	"context"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	GetByDay(ctx context.Context, filter domain.DayVisitsFilter) ([]*domain.Visit, error)
	UpdatePartySize(ctx context.Context, id int64, partySize int) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// BlockRepository интерфейс репозитория административных блокировок
type BlockRepository interface {
	GetCovering(ctx context.Context, day time.Time) ([]*domain.DayBlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений.
// Reminder синхронный: его результат возвращается вызывающему.
type Notifier interface {
	VisitCancelled(visit *domain.Visit, reason string)
	PartySizeUpdated(visit *domain.Visit, oldSize int)
	Reminder(ctx context.Context, visit *domain.Visit) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
