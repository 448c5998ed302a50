package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/glashaus-studio/GH-VisitService/internal/capacity"
	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	visitRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/visit"
	"github.com/glashaus-studio/GH-VisitService/internal/service/visits/models"
)

// Service сервис для работы с существующими визитами
type Service struct {
	visitRepo VisitRepository
	txManager TransactionManager
	notifier  Notifier
	policy    domain.BookingPolicy
	logger    Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(
	visitRepo VisitRepository,
	txManager TransactionManager,
	notifier Notifier,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		visitRepo: visitRepo,
		txManager: txManager,
		notifier:  notifier,
		policy:    policy,
		logger:    logger,
	}
}

// GetByID получает визит по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VisitResponse, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("GetByID: visit id=%d not found", id)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("GetByID: repository error for visit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisit(visit), nil
}

// GetDayVisits получает визиты на день в хронологическом порядке.
// Отменённые визиты включаются только по явному запросу.
func (s *Service) GetDayVisits(ctx context.Context, req *models.GetDayVisitsRequest) (*models.VisitListResponse, error) {
	if req.Day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", ErrInvalidInput)
	}
	if req.VisitType != nil && !req.VisitType.IsValid() {
		return nil, fmt.Errorf("%w: unknown visit type %q", ErrInvalidInput, *req.VisitType)
	}

	visits, err := s.visitRepo.GetByDay(ctx, domain.DayVisitsFilter{
		Day:              req.Day,
		IncludeCancelled: req.IncludeCancelled,
		VisitType:        req.VisitType,
	})
	if err != nil {
		s.logger.Error("GetDayVisits: repository error for day=%s: %v", req.Day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDayVisits - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisitList(visits), nil
}

// Cancel отменяет визит. Отменённый визит перестаёт занимать вместимость,
// освобождая место для новых бронирований.
func (s *Service) Cancel(ctx context.Context, req *models.CancelVisitRequest) (*models.VisitResponse, error) {
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling visit id=%d", req.VisitID)

	visit, err := s.visitRepo.GetByID(ctx, req.VisitID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !visit.CanBeCancelled() {
		s.logger.Warn("Cancel: visit id=%d in status=%s cannot be cancelled", visit.ID, visit.Status)
		return nil, ErrCannotCancel
	}

	if err := s.visitRepo.Cancel(ctx, req.VisitID, req.CancellationReason); err != nil {
		if errors.Is(err, visitRepo.ErrCannotCancel) {
			return nil, ErrCannotCancel
		}
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	updated, err := s.visitRepo.GetByID(ctx, req.VisitID)
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - fetch after update: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: visit id=%d cancelled", updated.ID)
	// Уведомление best-effort, результат отмены от него не зависит
	s.notifier.VisitCancelled(updated, req.CancellationReason)

	return models.FromDomainVisit(updated), nil
}

// UpdatePartySize изменяет размер группы существующего визита.
// Увеличение проходит через оракул вместимости в сериализуемой транзакции,
// как при создании. Force пропускает проверку (административный вызов).
func (s *Service) UpdatePartySize(ctx context.Context, req *models.UpdatePartySizeRequest) (*models.VisitResponse, error) {
	if req.PartySize < domain.MinPartySize {
		return nil, fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}
	if req.PartySize > domain.MaxPartySize {
		return nil, fmt.Errorf("%w: partySize exceeds %d", ErrInvalidInput, domain.MaxPartySize)
	}

	s.logger.Info("UpdatePartySize: visit id=%d, newSize=%d, force=%v", req.VisitID, req.PartySize, req.Force)

	var updated *domain.Visit
	var oldSize int

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		visit, err := s.visitRepo.GetByID(txCtx, req.VisitID)
		if err != nil {
			if errors.Is(err, visitRepo.ErrVisitNotFound) {
				return ErrVisitNotFound
			}
			return fmt.Errorf("%w: UpdatePartySize - get visit: %v", ErrInternal, err)
		}
		if visit.IsCancelled() {
			return fmt.Errorf("%w: visit is cancelled", ErrInvalidInput)
		}
		oldSize = visit.PartySize

		// Новый размер проверяется против дня без самого визита:
		// визит занимает место своим новым размером, не суммой старого и нового
		if !req.Force && req.PartySize > oldSize {
			others, err := s.visitRepo.GetByDay(txCtx, domain.DayVisitsFilter{
				Day:            visit.VisitDate,
				ExcludeVisitID: &visit.ID,
			})
			if err != nil {
				return fmt.Errorf("%w: UpdatePartySize - get day visits: %v", ErrInternal, err)
			}

			proposed := capacity.Reservation{
				Start:           visit.StartTime,
				DurationMinutes: visit.DurationMinutes,
				PartySize:       req.PartySize,
			}
			if !capacity.Feasible(proposed, capacity.FromVisits(others), s.policy.RoomCapacity) {
				return fmt.Errorf("%w: party of %d at %s", ErrCapacityExceeded, req.PartySize, visit.StartTime)
			}
		}

		if err := s.visitRepo.UpdatePartySize(txCtx, req.VisitID, req.PartySize); err != nil {
			return fmt.Errorf("%w: UpdatePartySize - update: %v", ErrInternal, err)
		}

		updated, err = s.visitRepo.GetByID(txCtx, req.VisitID)
		if err != nil {
			return fmt.Errorf("%w: UpdatePartySize - fetch after update: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdatePartySize: visit id=%d resized %d -> %d", updated.ID, oldSize, updated.PartySize)
	s.notifier.PartySizeUpdated(updated, oldSize)

	return models.FromDomainVisit(updated), nil
}

// SendReminder отправляет напоминание о визите. В отличие от остальных
// уведомлений отправка синхронная: напоминание и есть основной эффект операции,
// и его провал должен быть виден вызывающему.
func (s *Service) SendReminder(ctx context.Context, visitID int64) error {
	visit, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			return ErrVisitNotFound
		}
		return fmt.Errorf("%w: SendReminder - repository error: %v", ErrInternal, err)
	}

	if visit.IsCancelled() {
		return fmt.Errorf("%w: visit is cancelled", ErrInvalidInput)
	}

	if err := s.notifier.Reminder(ctx, visit); err != nil {
		s.logger.Error("SendReminder: delivery failed for visit id=%d: %v", visitID, err)
		return fmt.Errorf("%w: %v", ErrReminderFailed, err)
	}

	s.logger.Info("SendReminder: reminder sent for visit id=%d", visitID)
	return nil
}
