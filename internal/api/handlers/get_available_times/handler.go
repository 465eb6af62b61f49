package get_available_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	getAvailableTimes "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/get_available_times"
)

const (
	msgInvalidTourType  = "некорректный тип тура"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize = "некорректный размер группы"
	msgTourNotFound     = "тур не найден"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourType}/available-times
// Query params: date (required, YYYY-MM-DD), partySize (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tourType из URL
	tourType, err := domain.ParseTourType(vars["tourType"])
	if err != nil {
		h.logger.Warn("GET /tours/{tourType}/available-times - Invalid tour type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourType)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tours/{tourType}/available-times - Missing date: tour_type=%s", tourType)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем partySize из query параметров (по умолчанию 1)
	partySize := 1
	if raw := r.URL.Query().Get("partySize"); raw != "" {
		partySize, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /tours/{tourType}/available-times - Invalid party size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(tourType, dateStr, partySize)
	if err != nil {
		h.logger.Warn("GET /tours/{tourType}/available-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrTourNotFound):
			h.logger.Warn("GET /tours/{tourType}/available-times - Tour not found: tour_type=%s", tourType)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /tours/{tourType}/available-times - Invalid input: tour_type=%s, error=%v", tourType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /tours/{tourType}/available-times - Failed to get times: tour_type=%s, date=%s, error=%v",
				tourType, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tours/{tourType}/available-times - Times retrieved successfully: tour_type=%s, date=%s, times_count=%d, source=%s",
		tourType, dateStr, len(result.Times), result.Source)
	handlers.RespondJSON(w, http.StatusOK, response)
}
