package courts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// courtColumns список колонок таблицы кортов в порядке сканирования
// Ценовой профиль хранится в той же строке
var courtColumns = []string{
	"id",
	"venue_id",
	"name",
	"opening_time",
	"closing_time",
	"peak_start_time",
	"peak_end_time",
	"peak_hourly_price",
	"off_peak_hourly_price",
}

// Repository репозиторий для работы с кортами и их ценовыми профилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает корт вместе с ценовым профилем
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	return court, nil
}

// GetByVenue получает все корты площадки
// Возвращает ErrVenueNotFound, если у площадки нет ни одного корта
func (r *Repository) GetByVenue(ctx context.Context, venueID int64) ([]domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenue - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]domain.Court, 0)
	for rows.Next() {
		var (
			court              domain.Court
			peakPrice, offPeak sql.NullFloat64
		)
		if err := rows.Scan(
			&court.ID,
			&court.VenueID,
			&court.Name,
			&court.Profile.OpeningTime,
			&court.Profile.ClosingTime,
			&court.Profile.PeakStartTime,
			&court.Profile.PeakEndTime,
			&peakPrice,
			&offPeak,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByVenue: %v", ErrScanRow, err)
		}
		// NULL цены остаются нулевыми и заменяются дефолтами в Normalized
		court.Profile.PeakHourlyPrice = peakPrice.Float64
		court.Profile.OffPeakHourlyPrice = offPeak.Float64
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVenue - rows iteration: %v", ErrScanRow, err)
	}

	if len(courts) == 0 {
		return nil, ErrVenueNotFound
	}

	return courts, nil
}

func scanCourt(row *sql.Row) (*domain.Court, error) {
	var (
		court              domain.Court
		peakPrice, offPeak sql.NullFloat64
	)
	err := row.Scan(
		&court.ID,
		&court.VenueID,
		&court.Name,
		&court.Profile.OpeningTime,
		&court.Profile.ClosingTime,
		&court.Profile.PeakStartTime,
		&court.Profile.PeakEndTime,
		&peakPrice,
		&offPeak,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("%w: scanCourt: %v", ErrScanRow, err)
	}
	// NULL цены остаются нулевыми и заменяются дефолтами в Normalized
	court.Profile.PeakHourlyPrice = peakPrice.Float64
	court.Profile.OffPeakHourlyPrice = offPeak.Float64
	return &court, nil
}
