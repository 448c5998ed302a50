package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/capacity"
	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/internal/infra/storage/settings"
	"github.com/glashaus-studio/GH-VisitService/internal/infra/storage/slot"
	"github.com/glashaus-studio/GH-VisitService/pkg/metrics"
)

// UseCase бизнес-логика создания бронирования
type UseCase struct {
	visitRepo    VisitRepository
	slotRepo     SlotRepository
	blockRepo    BlockRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	notifier     Notifier
	policy       domain.BookingPolicy
	metrics      *metrics.Metrics
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	visitRepo VisitRepository,
	slotRepo SlotRepository,
	blockRepo BlockRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	notifier Notifier,
	policy domain.BookingPolicy,
	m *metrics.Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		visitRepo:    visitRepo,
		slotRepo:     slotRepo,
		blockRepo:    blockRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		notifier:     notifier,
		policy:       policy,
		metrics:      m,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создаёт бронирование визита.
// Проверки блокировок и вместимости выполняются внутри сериализуемой
// транзакции, чтобы закрыть гонку read-then-write между конкурентными
// запросами на один день.
func (u *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()

	// 2. Разрешаем слот: по ID или по точному совпадению даты/времени/типа
	resolved, err := u.resolveSlot(ctx, req)
	if err != nil {
		u.countRejection("no_slot")
		return nil, err
	}

	// 3. Длительность определяется типом визита, а не запросом
	duration := u.policy.DurationFor(resolved.VisitType)
	if duration <= 0 {
		return nil, fmt.Errorf("%w: no duration configured for type %q", ErrInternal, resolved.VisitType)
	}

	// 4. Цена: приоритет у переопределения на слоте, иначе базовая цена типа
	price, err := u.resolvePrice(ctx, resolved)
	if err != nil {
		return nil, err
	}

	visit := &domain.Visit{
		VisitDate:       resolved.SlotDate,
		StartTime:       resolved.StartTime,
		VisitType:       resolved.VisitType,
		DurationMinutes: duration,
		PartySize:       req.PartySize,
		Status:          domain.StatusConfirmed,
		Price:           price,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	}

	// 5. Проверка и запись в одной сериализуемой транзакции
	var created *domain.Visit
	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if !req.AdminOverride {
			if err := u.checkBookable(txCtx, visit, now); err != nil {
				return err
			}
		}

		v, err := u.visitRepo.Create(txCtx, visit)
		if err != nil {
			return fmt.Errorf("%w: Execute - create visit: %v", ErrInternal, err)
		}
		created = v
		return nil
	})
	if err != nil {
		u.countRejection(rejectionReason(err))
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.VisitsCreatedTotal.WithLabelValues(string(created.VisitType)).Inc()
	}
	u.logger.Info("create_booking: visit %d confirmed for %s %s (party %d)",
		created.ID, created.VisitDate.Format(domain.DateFormat), created.StartTime, created.PartySize)

	// 6. Уведомление best-effort, результат бронирования от него не зависит
	u.notifier.VisitConfirmed(created)

	return fromDomain(created), nil
}

// Validate выполняет те же проверки, что и Execute, но ничего не записывает.
// Бизнес-отказы возвращаются как результат, а не как ошибка.
func (u *UseCase) Validate(ctx context.Context, req *Request) (*ValidationResult, error) {
	if err := validateRequest(req); err != nil {
		return &ValidationResult{Valid: false, Reason: err.Error()}, nil
	}

	now := u.timeProvider.Now()

	resolved, err := u.resolveSlot(ctx, req)
	if err != nil {
		if errors.Is(err, ErrNoSlotDefined) {
			return &ValidationResult{Valid: false, Reason: ErrNoSlotDefined.Error()}, nil
		}
		return nil, err
	}

	duration := u.policy.DurationFor(resolved.VisitType)
	visit := &domain.Visit{
		VisitDate:       resolved.SlotDate,
		StartTime:       resolved.StartTime,
		VisitType:       resolved.VisitType,
		DurationMinutes: duration,
		PartySize:       req.PartySize,
		Status:          domain.StatusConfirmed,
	}

	if err := u.checkBookable(ctx, visit, now); err != nil {
		if isBusinessRejection(err) {
			return &ValidationResult{Valid: false, Reason: err.Error()}, nil
		}
		return nil, err
	}

	return &ValidationResult{Valid: true}, nil
}

// resolveSlot находит предопределённый слот для запроса.
// Бронирование без существующего слота невозможно.
func (u *UseCase) resolveSlot(ctx context.Context, req *Request) (*domain.Slot, error) {
	if req.SlotID != nil {
		s, err := u.slotRepo.GetByID(ctx, *req.SlotID)
		if err != nil {
			if errors.Is(err, slot.ErrSlotNotFound) {
				return nil, fmt.Errorf("%w: slot %d", ErrNoSlotDefined, *req.SlotID)
			}
			return nil, fmt.Errorf("%w: resolveSlot - get by id: %v", ErrInternal, err)
		}
		return s, nil
	}

	s, err := u.slotRepo.GetByDateTime(ctx, req.Date, req.StartTime, req.VisitType)
	if err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: %s %s %s", ErrNoSlotDefined,
				req.Date.Format(domain.DateFormat), req.StartTime, req.VisitType)
		}
		return nil, fmt.Errorf("%w: resolveSlot - get by date/time: %v", ErrInternal, err)
	}
	return s, nil
}

func (u *UseCase) resolvePrice(ctx context.Context, s *domain.Slot) (float64, error) {
	if s.HasPriceOverride() {
		return *s.PriceOverride, nil
	}

	price, err := u.settingsRepo.GetPrice(ctx, s.VisitType)
	if err != nil {
		if errors.Is(err, settings.ErrPriceNotFound) {
			// Базовая цена не настроена: бронируем бесплатно, но оставляем след в логах
			u.logger.Warn("create_booking: no base price configured for type %q, defaulting to 0", s.VisitType)
			return 0, nil
		}
		return 0, fmt.Errorf("%w: resolvePrice: %v", ErrInternal, err)
	}
	return price, nil
}

// checkBookable проверяет блокировки, дату, рабочие часы и вместимость.
// Внутри транзакции выборка визитов дня идёт с FOR UPDATE.
func (u *UseCase) checkBookable(ctx context.Context, visit *domain.Visit, now time.Time) error {
	// Блокировка дня имеет приоритет над всеми остальными проверками
	blocks, err := u.blockRepo.GetCovering(ctx, visit.VisitDate)
	if err != nil {
		return fmt.Errorf("%w: checkBookable - get blocks: %v", ErrInternal, err)
	}
	if domain.AnyBlockCovers(blocks, visit.VisitDate) {
		return fmt.Errorf("%w: %s", ErrDayBlocked, visit.VisitDate.Format(domain.DateFormat))
	}

	if err := validateDate(visit.VisitDate, now); err != nil {
		return err
	}

	// Слот сам задаёт окно, но визит целиком должен помещаться в рабочие часы
	if !u.policy.WithinOperatingWindow(visit.StartTime, visit.DurationMinutes) {
		return fmt.Errorf("%w: %s + %d min", ErrOutsideOperatingHours, visit.StartTime, visit.DurationMinutes)
	}

	existing, err := u.visitRepo.GetByDay(ctx, domain.DayVisitsFilter{Day: visit.VisitDate})
	if err != nil {
		return fmt.Errorf("%w: checkBookable - get day visits: %v", ErrInternal, err)
	}

	proposed := capacity.Reservation{
		Start:           visit.StartTime,
		DurationMinutes: visit.DurationMinutes,
		PartySize:       visit.PartySize,
	}
	if !capacity.Feasible(proposed, capacity.FromVisits(existing), u.policy.RoomCapacity) {
		return fmt.Errorf("%w: party of %d at %s", ErrCapacityExceeded, visit.PartySize, visit.StartTime)
	}

	return nil
}

func (u *UseCase) countRejection(reason string) {
	if u.metrics != nil {
		u.metrics.VisitsRejectedTotal.WithLabelValues(reason).Inc()
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrDayBlocked):
		return "day_blocked"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrOutsideOperatingHours):
		return "outside_hours"
	case errors.Is(err, ErrInvalidDate):
		return "past_date"
	case errors.Is(err, ErrNoSlotDefined):
		return "no_slot"
	default:
		return "internal"
	}
}

func isBusinessRejection(err error) bool {
	return errors.Is(err, ErrDayBlocked) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrOutsideOperatingHours) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNoSlotDefined)
}
