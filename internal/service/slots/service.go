package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	slotRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/slot"
	"github.com/glashaus-studio/GH-VisitService/internal/service/slots/models"
)

// Service сервис для управления слотами и базовыми ценами
type Service struct {
	slotRepo     SlotRepository
	settingsRepo SettingsRepository
	policy       domain.BookingPolicy
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	settingsRepo SettingsRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		settingsRepo: settingsRepo,
		policy:       policy,
		logger:       logger,
	}
}

// Create создает слот. Слот должен помещаться в рабочие часы,
// иначе на него всё равно нельзя будет забронироваться.
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if !req.VisitType.IsValid() {
		return nil, fmt.Errorf("%w: unknown visit type %q", ErrInvalidInput, req.VisitType)
	}
	if req.PriceOverride != nil && *req.PriceOverride < 0 {
		return nil, fmt.Errorf("%w: priceOverride must not be negative", ErrInvalidInput)
	}

	duration := s.policy.DurationFor(req.VisitType)
	if !s.policy.WithinOperatingWindow(req.StartTime, duration) {
		return nil, fmt.Errorf("%w: slot %s + %d min does not fit operating hours",
			ErrInvalidInput, req.StartTime, duration)
	}

	created, err := s.slotRepo.Create(ctx, &domain.Slot{
		SlotDate:      req.Date,
		StartTime:     req.StartTime,
		VisitType:     req.VisitType,
		PriceOverride: req.PriceOverride,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("Create: duplicate slot %s %s %s",
				req.Date.Format(domain.DateFormat), req.StartTime, req.VisitType)
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot created: slot_id=%d, date=%s, start=%s, type=%s",
		created.ID, created.SlotDate.Format(domain.DateFormat), created.StartTime, created.VisitType)
	return models.FromDomainSlot(created), nil
}

// ListByDate возвращает слоты дня в хронологическом порядке
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.SlotListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	found, err := s.slotRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(found), nil
}

// Delete удаляет слот. Существующие бронирования не трогаем:
// слот определяет только возможность новых.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// SetPrice устанавливает базовую цену типа визита.
// Слоты с переопределённой ценой её не используют.
func (s *Service) SetPrice(ctx context.Context, req *models.SetPriceRequest) error {
	if !req.VisitType.IsValid() {
		return fmt.Errorf("%w: unknown visit type %q", ErrInvalidInput, req.VisitType)
	}
	if req.BasePrice < 0 {
		return fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}

	if err := s.settingsRepo.SetPrice(ctx, req.VisitType, req.BasePrice); err != nil {
		s.logger.Error("SetPrice: repository error for type=%s: %v", req.VisitType, err)
		return fmt.Errorf("%w: SetPrice - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetPrice: base price set: type=%s, price=%.2f", req.VisitType, req.BasePrice)
	return nil
}
