package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/courts"
	slotsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	slotRepo      SlotRepository
	courtRepo     CourtRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	leadTimeHours int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	leadTimeHours int,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:      slotRepo,
		courtRepo:     courtRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		leadTimeHours: leadTimeHours,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения двойного бронирования слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, slots=%v", req.UserID, req.CourtID, req.SlotIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт с профилем цен
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtsRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем слоты (FOR UPDATE)
		slots, err := uc.slotRepo.GetByIDsForUpdate(txCtx, req.SlotIDs)
		if err != nil {
			if errors.Is(err, slotsRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock slots: %v", err)
			return fmt.Errorf("%w: failed to lock slots: %v", ErrInternal, err)
		}

		domain.SortSlotsByStart(slots)

		// 3.2. Слоты свободны, принадлежат корту и образуют непрерывный блок
		if err := validateBlock(slots, req.CourtID, len(req.SlotIDs)); err != nil {
			uc.logger.Warn("CreateBooking: block validation failed: %v", err)
			return err
		}

		first := &slots[0]
		last := &slots[len(slots)-1]

		// 3.3. Проверяем lead time
		if err := validateLeadTime(first, now, uc.leadTimeHours); err != nil {
			uc.logger.Warn("CreateBooking: lead time violated for slot id=%d", first.ID)
			return err
		}

		// 3.4. Считаем стоимость: тариф определяется началом блока
		profile, _ := court.Profile.Normalized()
		rate := profile.HourlyRate(first.StartTime)
		peak := profile.IsPeak(first.StartTime)
		total := rate * float64(len(slots))

		// 3.5. Помечаем слоты занятыми
		if err := uc.slotRepo.UpdateStatus(txCtx, req.SlotIDs, domain.SlotBooked); err != nil {
			uc.logger.Error("CreateBooking: failed to update slot status: %v", err)
			return fmt.Errorf("%w: failed to update slot status: %v", ErrInternal, err)
		}

		// 3.6. Создаем бронирование
		booking := &domain.Booking{
			Reference:  uuid.NewString(),
			UserID:     req.UserID,
			VenueID:    court.VenueID,
			CourtID:    court.ID,
			Date:       first.Date,
			StartTime:  first.StartTime,
			EndTime:    last.EndTime,
			SlotCount:  len(slots),
			HourlyRate: rate,
			TotalPrice: total,
			PeakRate:   peak,
			Notes:      req.Notes,
			Status:     domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s, total=%.2f",
		result.ID, result.Reference, result.TotalPrice)

	return &Response{
		ID:         result.ID,
		Reference:  result.Reference,
		UserID:     result.UserID,
		VenueID:    result.VenueID,
		CourtID:    result.CourtID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		SlotCount:  result.SlotCount,
		HourlyRate: result.HourlyRate,
		TotalPrice: result.TotalPrice,
		PeakRate:   result.PeakRate,
		Status:     string(result.Status),
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
	}, nil
}
