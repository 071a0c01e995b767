package get_venue_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	venueAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/venue_availability"
)

const (
	msgInvalidVenueID  = "некорректный ID площадки"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCapacity = "некорректная вместимость"
	msgInvalidInput    = "некорректные входные данные"
	msgVenueNotFound   = "площадка не найдена"
)

type Handler struct {
	useCase VenueAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase VenueAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slots
// Query params: date (required, YYYY-MM-DD), capacity (required, число игроков)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем venueId из URL
	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем capacity из query параметров
	capacityStr := r.URL.Query().Get("capacity")
	capacity, err := strconv.Atoi(capacityStr)
	if err != nil || capacity <= 0 {
		h.logger.Warn("GET /venues/{id}/slots - Invalid capacity: %q", capacityStr)
		handlers.RespondBadRequest(w, msgInvalidCapacity)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(venueID, dateStr, capacity)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, venueAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venueAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/slots - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /venues/{id}/slots - Failed to get venue slots: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /venues/{id}/slots - Venue slots retrieved successfully: venue_id=%d, slots_count=%d, can_satisfy=%t",
		venueID, len(result.Slots), result.CanSatisfy)
	handlers.RespondJSON(w, http.StatusOK, response)
}
