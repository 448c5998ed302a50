package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	blockRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/dayblock"
	"github.com/glashaus-studio/GH-VisitService/internal/service/blocks/models"
)

// Service сервис для управления административными блокировками дней
type Service struct {
	blockRepo BlockRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// Create создает блокировку дня или месяца.
// Существующие бронирования при этом не отменяются: блокировка запрещает
// только новые.
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	scope := domain.BlockScope(req.Scope)
	if !scope.IsValid() {
		return nil, fmt.Errorf("%w: unknown block scope %q", ErrInvalidInput, req.Scope)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	blockDate := req.Date
	if scope == domain.BlockScopeMonth {
		// Месячная блокировка хранится как первое число месяца
		blockDate = time.Date(req.Date.Year(), req.Date.Month(), 1, 0, 0, 0, 0, req.Date.Location())
	}

	s.logger.Info("Create: blocking scope=%s date=%s", scope, blockDate.Format(domain.DateFormat))

	created, err := s.blockRepo.Create(ctx, &domain.DayBlock{
		Scope:     scope,
		BlockDate: blockDate,
		Reason:    req.Reason,
	})
	if err != nil {
		if errors.Is(err, blockRepo.ErrDuplicateBlock) {
			s.logger.Warn("Create: block already exists for %s", blockDate.Format(domain.DateFormat))
			return nil, ErrDuplicateBlock
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlock(created), nil
}

// List возвращает блокировки за период [from, to]
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	found, err := s.blockRepo.GetRange(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(found), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing block id=%d", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
