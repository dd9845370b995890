package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/psqlbuilder"
	"github.com/reservely/reservation-service/pkg/txmanager"
)

// Repository репозиторий для чтения столов ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRestaurant возвращает все столы ресторана независимо от статуса.
// Фильтрация по вместимости и статусу выполняется при подборе стола.
func (r *Repository) GetByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"name",
		"capacity",
		"status",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID.String()}).
		OrderBy("capacity ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTables(rows)
}

// scanTables сканирует результаты запроса в слайс столов
func scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.Name, &t.Capacity, &t.Status); err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
