package get_available_starts

import (
	"context"
	"fmt"

	"github.com/glashaus-studio/GH-VisitService/internal/capacity"
	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// UseCase бизнес-логика перечисления доступных времён начала визита
type UseCase struct {
	visitRepo    VisitRepository
	blockRepo    BlockRepository
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	visitRepo VisitRepository,
	blockRepo BlockRepository,
	policy domain.BookingPolicy,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		visitRepo:    visitRepo,
		blockRepo:    blockRepo,
		policy:       policy,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает все времена начала, на которые группа может быть
// забронирована в указанный день. Снимок консистентен в пределах запроса,
// но не резервирует место: финальная проверка происходит при создании
// бронирования внутри транзакции.
func (u *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	resp := &Response{
		Date:            req.Date,
		VisitType:       req.VisitType,
		PartySize:       req.PartySize,
		DurationMinutes: u.policy.DurationFor(req.VisitType),
		Starts:          []types.TimeString{},
	}

	// 2. Блокировка дня имеет приоритет: закрытый день всегда даёт пустой список
	blocks, err := u.blockRepo.GetCovering(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get blocks: %v", ErrInternal, err)
	}
	if domain.AnyBlockCovers(blocks, req.Date) {
		resp.DayBlocked = true
		return resp, nil
	}

	// 3. Активные визиты дня (отменённые не занимают вместимость)
	visits, err := u.visitRepo.GetByDay(ctx, domain.DayVisitsFilter{Day: req.Date})
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get day visits: %v", ErrInternal, err)
	}

	// 4. Перебор кандидатов по сетке через оракул вместимости
	resp.Starts = capacity.AvailableStarts(u.policy, req.VisitType, req.PartySize, capacity.FromVisits(visits))

	return resp, nil
}
