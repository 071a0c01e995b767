package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	quotePrice "github.com/m04kA/SMC-CourtService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные входные данные"
	msgCourtNotFound      = "корт не найден"
	msgSlotNotFound       = "слот не найден"
	msgInvalidSelection   = "выбранные слоты не образуют непрерывный блок"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /price/quote - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrCourtNotFound):
			h.logger.Warn("POST /price/quote - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, quotePrice.ErrSlotNotFound):
			h.logger.Warn("POST /price/quote - Slot not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, quotePrice.ErrInvalidSelection):
			h.logger.Warn("POST /price/quote - Invalid selection: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /price/quote - Invalid input: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /price/quote - Failed to quote price: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /price/quote - Price quoted: court_id=%d, slots=%d, total=%.2f",
		req.CourtID, result.SlotCount, result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
