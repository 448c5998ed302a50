package visit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/dbmetrics"
	"github.com/glashaus-studio/GH-VisitService/pkg/psqlbuilder"
)

var visitColumns = []string{
	"id",
	"visit_date",
	"start_time",
	"visit_type",
	"duration_minutes",
	"party_size",
	"status",
	"price",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с визитами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый визит.
// Если в контексте передана активная транзакция, использует её,
// создание с проверкой вместимости должно идти в одной транзакции
// с чтением визитов дня.
func (r *Repository) Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visits").
		Columns(
			"visit_date",
			"start_time",
			"visit_type",
			"duration_minutes",
			"party_size",
			"status",
			"price",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
		).
		Values(
			visit.VisitDate,
			visit.StartTime,
			visit.VisitType,
			visit.DurationMinutes,
			visit.PartySize,
			visit.Status,
			visit.Price,
			visit.CustomerName,
			visit.CustomerEmail,
			visit.CustomerPhone,
			visit.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&visit.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time

	return visit, nil
}

// GetByID получает визит по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(visitColumns...).
		From("visits").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	visit, err := scanVisit(row.Scan)

	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %v", ErrScanRow, err)
	}

	return visit, nil
}

// GetByDay получает визиты на день с фильтрацией.
// Внутри транзакции добавляет FOR UPDATE: блокировка закрывает
// гонку read-then-write между проверкой вместимости и вставкой.
func (r *Repository) GetByDay(ctx context.Context, filter domain.DayVisitsFilter) ([]*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitColumns...).
		From("visits").
		Where(squirrel.Eq{"visit_date": filter.Day})

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	if filter.ExcludeVisitID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeVisitID})
	}

	if filter.VisitType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"visit_type": string(*filter.VisitType)})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// UpdatePartySize обновляет размер группы визита
func (r *Repository) UpdatePartySize(ctx context.Context, id int64, partySize int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visits").
		Set("party_size", partySize).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePartySize - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePartySize - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePartySize - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVisitNotFound
	}

	return nil
}

// Cancel отменяет визит с указанием причины.
// Отменённый визит перестаёт учитываться во всех расчётах вместимости.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visits").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVisitNotFound
	}

	return nil
}

// scanVisit сканирует одну строку в доменную модель
func scanVisit(scan func(dest ...interface{}) error) (*domain.Visit, error) {
	var visit domain.Visit
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&visit.ID,
		&visit.VisitDate,
		&visit.StartTime,
		&visit.VisitType,
		&visit.DurationMinutes,
		&visit.PartySize,
		&visit.Status,
		&visit.Price,
		&visit.CustomerName,
		&visit.CustomerEmail,
		&visit.CustomerPhone,
		&visit.Notes,
		&visit.CancellationReason,
		&visit.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time

	return &visit, nil
}

// scanVisits сканирует результаты запроса в слайс визитов
func scanVisits(rows *sql.Rows) ([]*domain.Visit, error) {
	visits := make([]*domain.Visit, 0)

	for rows.Next() {
		visit, err := scanVisit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVisits - scan row: %v", ErrScanRow, err)
		}
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVisits - rows error: %v", ErrScanRow, err)
	}

	return visits, nil
}
