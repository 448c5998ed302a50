package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/dbmetrics"
	"github.com/glashaus-studio/GH-VisitService/pkg/psqlbuilder"
)

// Repository репозиторий настроек бронирования (базовые цены по типам визитов)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPrice получает базовую цену для типа визита
func (r *Repository) GetPrice(ctx context.Context, visitType domain.VisitType) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("base_price").
		From("visit_settings").
		Where(squirrel.Eq{"visit_type": visitType}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetPrice - build select query: %v", ErrBuildQuery, err)
	}

	var price float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&price)

	if err == sql.ErrNoRows {
		return 0, ErrPriceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetPrice - scan price: %v", ErrScanRow, err)
	}

	return price, nil
}

// SetPrice задает базовую цену для типа визита (upsert)
func (r *Repository) SetPrice(ctx context.Context, visitType domain.VisitType, price float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visit_settings").
		Columns("visit_type", "base_price").
		Values(visitType, price).
		Suffix("ON CONFLICT (visit_type) DO UPDATE SET base_price = EXCLUDED.base_price, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPrice - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetPrice - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
