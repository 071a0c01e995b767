package slots

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// slotColumns список колонок таблицы слотов в порядке сканирования
var slotColumns = []string{
	"id",
	"court_id",
	"venue_id",
	"slot_date",
	"start_time",
	"end_time",
	"duration_hours",
	"status",
}

// Repository репозиторий для работы со слотами кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCourtAndDateRange получает все слоты корта за период (включительно)
// Используется для построения календаря доступных дат
func (r *Repository) GetByCourtAndDateRange(ctx context.Context, courtID int64, from, to time.Time) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("court_slots").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date", "start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDateRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByCourtAndDate получает все слоты корта на конкретную дату
func (r *Repository) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("court_slots").
		Where(squirrel.Eq{"court_id": courtID, "slot_date": date}).
		OrderBy("start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByVenueAndDate получает слоты всех кортов площадки на дату
// Используется агрегатором доступности площадки
func (r *Repository) GetByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("court_slots").
		Where(squirrel.Eq{"venue_id": venueID, "slot_date": date}).
		OrderBy("court_id", "start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueAndDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByVenueAndDateRange получает слоты всех кортов площадки за период
// Используется расчетом blackout дат
func (r *Repository) GetByVenueAndDateRange(ctx context.Context, venueID int64, from, to time.Time) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("court_slots").
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date", "court_id", "start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueAndDateRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByIDsForUpdate получает слоты по списку ID с блокировкой FOR UPDATE
// Вызывается только внутри транзакции при создании бронирования
func (r *Repository) GetByIDsForUpdate(ctx context.Context, ids []int64) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("court_slots").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("start_time").
		Suffix("FOR UPDATE").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDsForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDsForUpdate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// UpdateStatus переводит слоты в указанный статус
// Возвращает ErrSlotNotFound, если затронуто меньше строк, чем передано ID
func (r *Repository) UpdateStatus(ctx context.Context, ids []int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("court_slots").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected != int64(len(ids)) {
		return fmt.Errorf("%w: UpdateStatus - updated %d of %d slots", ErrSlotNotFound, affected, len(ids))
	}

	return nil
}

// scanSlots сканирует строки результата в доменные модели
func scanSlots(rows *sql.Rows) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.CourtID,
			&slot.VenueID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.DurationHours,
			&slot.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: scanSlots: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows iteration: %v", ErrScanRow, err)
	}

	return slots, nil
}
