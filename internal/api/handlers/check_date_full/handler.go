package check_date_full

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	checkDateFull "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/check_date_full"
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
	useCase CheckDateFullUseCase
	logger  Logger
}

func NewHandler(useCase CheckDateFullUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourType}/date-full
// Query params: date (required, YYYY-MM-DD), partySize (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tourType, err := domain.ParseTourType(vars["tourType"])
	if err != nil {
		h.logger.Warn("GET /tours/{tourType}/date-full - Invalid tour type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourType)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tours/{tourType}/date-full - Missing date: tour_type=%s", tourType)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	partySize := 1
	if raw := r.URL.Query().Get("partySize"); raw != "" {
		partySize, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /tours/{tourType}/date-full - Invalid party size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(tourType, dateStr, partySize)
	if err != nil {
		h.logger.Warn("GET /tours/{tourType}/date-full - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkDateFull.ErrTourNotFound):
			h.logger.Warn("GET /tours/{tourType}/date-full - Tour not found: tour_type=%s", tourType)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, checkDateFull.ErrInvalidInput):
			h.logger.Warn("GET /tours/{tourType}/date-full - Invalid input: tour_type=%s, error=%v", tourType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /tours/{tourType}/date-full - Failed to check date: tour_type=%s, date=%s, error=%v",
				tourType, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tours/{tourType}/date-full - Date checked: tour_type=%s, date=%s, is_full=%t",
		tourType, dateStr, result.IsFull)
	handlers.RespondJSON(w, http.StatusOK, response)
}
