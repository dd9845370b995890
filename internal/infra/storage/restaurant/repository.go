package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/psqlbuilder"
	"github.com/reservely/reservation-service/pkg/txmanager"
)

var weekdayColumns = []string{
	"monday_open", "monday_close",
	"tuesday_open", "tuesday_close",
	"wednesday_open", "wednesday_close",
	"thursday_open", "thursday_close",
	"friday_open", "friday_close",
	"saturday_open", "saturday_close",
	"sunday_open", "sunday_close",
}

// Repository репозиторий для чтения настроек ресторанов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает настройки ресторана по ID.
// Незаполненные колонки заменяются значениями по умолчанию.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RestaurantConfig, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	columns := append([]string{"id", "name"}, weekdayColumns...)
	columns = append(columns,
		"default_duration",
		"min_advance_hours",
		"max_advance_days",
		"min_party_size",
		"max_party_size",
		"time_zone",
		"created_at",
		"updated_at",
	)

	query, args, err := psqlbuilder.Select(columns...).
		From("restaurants").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg             domain.RestaurantConfig
		defaultDuration []byte
		minAdvanceHours sql.NullInt32
		maxAdvanceDays  sql.NullInt32
		minPartySize    sql.NullInt32
		maxPartySize    sql.NullInt32
		timeZone        sql.NullString
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)

	s := &cfg.Schedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Name,
		&s.Monday.Open, &s.Monday.Close,
		&s.Tuesday.Open, &s.Tuesday.Close,
		&s.Wednesday.Open, &s.Wednesday.Close,
		&s.Thursday.Open, &s.Thursday.Close,
		&s.Friday.Open, &s.Friday.Close,
		&s.Saturday.Open, &s.Saturday.Close,
		&s.Sunday.Open, &s.Sunday.Close,
		&defaultDuration,
		&minAdvanceHours,
		&maxAdvanceDays,
		&minPartySize,
		&maxPartySize,
		&timeZone,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	cfg.DefaultDuration = decodeDuration(defaultDuration)
	cfg.MinAdvanceHours = intOrDefault(minAdvanceHours, domain.DefaultMinAdvanceHours)
	cfg.MaxAdvanceDays = intOrDefault(maxAdvanceDays, domain.DefaultMaxAdvanceDays)
	cfg.MinPartySize = intOrDefault(minPartySize, domain.DefaultMinPartySize)
	cfg.MaxPartySize = intOrDefault(maxPartySize, domain.DefaultMaxPartySize)
	cfg.TimeZone = timeZone.String
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time
	cfg.ApplyDefaults()

	return &cfg, nil
}

// decodeDuration разбирает JSON колонку {"hours": 1, "minutes": 30}.
// Пустое или некорректное значение означает отсутствие длительности по умолчанию.
func decodeDuration(raw []byte) *domain.Duration {
	if len(raw) == 0 {
		return nil
	}

	var d domain.Duration
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	if err := d.Validate(); err != nil {
		return nil
	}

	return &d
}

func intOrDefault(v sql.NullInt32, def int) int {
	if !v.Valid {
		return def
	}
	return int(v.Int32)
}
