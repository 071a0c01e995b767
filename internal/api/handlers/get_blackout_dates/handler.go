package get_blackout_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	blackoutDates "github.com/m04kA/SMC-CourtService/internal/usecase/blackout_dates"
)

const (
	msgInvalidVenueID  = "некорректный ID площадки"
	msgMissingRange    = "параметры from и to обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCapacity = "некорректная вместимость"
	msgRangeTooWide    = "слишком широкий период"
	msgInvalidInput    = "некорректные входные данные"
	msgVenueNotFound   = "площадка не найдена"
)

type Handler struct {
	useCase BlackoutDatesUseCase
	logger  Logger
}

func NewHandler(useCase BlackoutDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/blackout-dates
// Query params: from (required), to (required), capacity (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем venueId из URL
	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/blackout-dates - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Извлекаем период из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /venues/{id}/blackout-dates - Missing date range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	// Извлекаем capacity из query параметров
	capacityStr := r.URL.Query().Get("capacity")
	capacity, err := strconv.Atoi(capacityStr)
	if err != nil || capacity <= 0 {
		h.logger.Warn("GET /venues/{id}/blackout-dates - Invalid capacity: %q", capacityStr)
		handlers.RespondBadRequest(w, msgInvalidCapacity)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(venueID, fromStr, toStr, capacity)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/blackout-dates - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blackoutDates.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/blackout-dates - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, blackoutDates.ErrRangeTooWide):
			h.logger.Warn("GET /venues/{id}/blackout-dates - Range too wide: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, blackoutDates.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/blackout-dates - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /venues/{id}/blackout-dates - Failed to get blackout dates: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /venues/{id}/blackout-dates - Blackout dates retrieved successfully: venue_id=%d, dates_count=%d",
		venueID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
