package timeslot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/dbmetrics"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/psqlbuilder"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/ptr"
)

// Repository репозиторий таблицы time_slots.
// Таблица ведет остатки мест для туров, которые не выставлены во внешнем
// источнике броней (см. TourType.UsesLocalSlotTable) - для них она играет
// роль внешнего сигнала доступности.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTourAndDate возвращает слоты тура на дату с положительным остатком мест.
// Строки с available_spots <= 0 отбрасываются еще в запросе.
func (r *Repository) GetByTourAndDate(ctx context.Context, tourType domain.TourType, date time.Time) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_time", "available_spots").
		From("time_slots").
		Where(squirrel.Eq{"tour_type": tourType}).
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Gt{"available_spots": 0}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTourAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTourAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		var spots int

		if err := rows.Scan(&slot.Time, &spots); err != nil {
			return nil, fmt.Errorf("%w: GetByTourAndDate - scan row: %v", ErrScanRow, err)
		}

		slot.AvailableSpots = ptr.Ptr(spots)
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTourAndDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// HasAnyAvailability проверяет, есть ли у тура хотя бы один слот с местами
// в диапазоне дат. Используется сканом ближайшей свободной даты.
func (r *Repository) HasAnyAvailability(ctx context.Context, tourType domain.TourType, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("time_slots").
		Where(squirrel.Eq{"tour_type": tourType}).
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Gt{"available_spots": 0}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasAnyAvailability - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasAnyAvailability - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}
