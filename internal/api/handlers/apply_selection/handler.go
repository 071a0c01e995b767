package apply_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	selectSlot "github.com/m04kA/SMC-CourtService/internal/usecase/select_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные входные данные"
	msgStaleSelection     = "текущий выбор устарел, начните выбор заново"
)

type Handler struct {
	useCase SelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selection/apply
//
// Отказ в изменении выбора - это не ошибка уровня HTTP: ответ 200
// с флагом rejected и причиной, выбор в ответе остается прежним
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplySelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/apply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /selection/apply - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectSlot.ErrInvalidSelection):
			h.logger.Warn("POST /selection/apply - Stale selection: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondError(w, http.StatusConflict, msgStaleSelection)

		case errors.Is(err, selectSlot.ErrInvalidInput):
			h.logger.Warn("POST /selection/apply - Invalid input: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /selection/apply - Failed to apply selection: court_id=%d, error=%v",
				req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /selection/apply - Selection applied: court_id=%d, rejected=%t, selection_size=%d",
		req.CourtID, result.Rejected, len(result.Selection))
	handlers.RespondJSON(w, http.StatusOK, response)
}
