package dayblock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/dbmetrics"
	"github.com/glashaus-studio/GH-VisitService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const pqUniqueViolation = "23505"

var blockColumns = []string{
	"id",
	"scope",
	"block_date",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с административными блокировками дней
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("day_blocks").
		Columns("scope", "block_date", "reason").
		Values(block.Scope, block.BlockDate, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateBlock
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetCovering получает все блокировки, закрывающие указанный день:
// блокировки-даты с совпадающим днём и блокировки-месяцы с совпадающим
// годом и месяцем.
func (r *Repository) GetCovering(ctx context.Context, day time.Time) ([]*domain.DayBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("day_blocks").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"scope": domain.BlockScopeDate},
				squirrel.Eq{"block_date": day},
			},
			squirrel.And{
				squirrel.Eq{"scope": domain.BlockScopeMonth},
				squirrel.Eq{"block_date": monthStart},
			},
		}).
		OrderBy("block_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCovering - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCovering - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// GetRange получает блокировки с датой в диапазоне [from, to]
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*domain.DayBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("day_blocks").
		Where(squirrel.GtOrEq{"block_date": from}).
		Where(squirrel.LtOrEq{"block_date": to}).
		OrderBy("block_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("day_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// scanBlocks сканирует результаты запроса в слайс блокировок
func scanBlocks(rows *sql.Rows) ([]*domain.DayBlock, error) {
	blocks := make([]*domain.DayBlock, 0)

	for rows.Next() {
		var block domain.DayBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.Scope,
			&block.BlockDate,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
