package bookings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// bookingColumns список колонок таблицы бронирований в порядке сканирования
var bookingColumns = []string{
	"id",
	"reference",
	"user_id",
	"venue_id",
	"court_id",
	"booking_date",
	"start_time",
	"end_time",
	"slot_count",
	"hourly_rate",
	"total_price",
	"peak_rate",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"user_id",
			"venue_id",
			"court_id",
			"booking_date",
			"start_time",
			"end_time",
			"slot_count",
			"hourly_rate",
			"total_price",
			"peak_rate",
			"notes",
			"status",
		).
		Values(
			booking.Reference,
			booking.UserID,
			booking.VenueID,
			booking.CourtID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.SlotCount,
			booking.HourlyRate,
			booking.TotalPrice,
			booking.PeakRate,
			booking.Notes,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, опционально по статусу
// Сортировка: ближайшие даты первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC", "start_time DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBookingRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// Cancel отменяет бронирование с указанием причины
// Статус уже должен быть проверен на уровне сервиса (CanBeCancelled)
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	return nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		createdAt, updatedAt sql.NullTime
		cancelledAt          sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.VenueID,
		&booking.CourtID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.SlotCount,
		&booking.HourlyRate,
		&booking.TotalPrice,
		&booking.PeakRate,
		&booking.Notes,
		&booking.CancellationReason,
		&cancelledAt,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("%w: scanBooking: %v", ErrScanRow, err)
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookingRows(rows *sql.Rows) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		createdAt, updatedAt sql.NullTime
		cancelledAt          sql.NullTime
	)

	err := rows.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.VenueID,
		&booking.CourtID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.SlotCount,
		&booking.HourlyRate,
		&booking.TotalPrice,
		&booking.PeakRate,
		&booking.Notes,
		&booking.CancellationReason,
		&cancelledAt,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanBookingRows: %v", ErrScanRow, err)
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
