package preload_availability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	preloadAvailability "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/preload_availability"
)

const (
	msgInvalidTourType = "некорректный тип тура"
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTourNotFound    = "тур не найден"
	msgRangeTooWide    = "диапазон дат слишком широкий"
	msgInvalidInput    = "некорректные входные данные"
)

type Handler struct {
	useCase PreloadAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase PreloadAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tours/{tourType}/availability/preload
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tourType, err := domain.ParseTourType(vars["tourType"])
	if err != nil {
		h.logger.Warn("POST /tours/{tourType}/availability/preload - Invalid tour type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourType)
		return
	}

	var body PreloadRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /tours/{tourType}/availability/preload - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := body.ToUseCaseRequest(tourType)
	if err != nil {
		h.logger.Warn("POST /tours/{tourType}/availability/preload - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, preloadAvailability.ErrTourNotFound):
			h.logger.Warn("POST /tours/{tourType}/availability/preload - Tour not found: tour_type=%s", tourType)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, preloadAvailability.ErrRangeTooWide):
			h.logger.Warn("POST /tours/{tourType}/availability/preload - Range too wide: tour_type=%s, start=%s, end=%s",
				tourType, body.StartDate, body.EndDate)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, preloadAvailability.ErrInvalidInput):
			h.logger.Warn("POST /tours/{tourType}/availability/preload - Invalid input: tour_type=%s, error=%v", tourType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tours/{tourType}/availability/preload - Failed to preload: tour_type=%s, error=%v",
				tourType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /tours/{tourType}/availability/preload - Preload finished: tour_type=%s, requested=%d, fetched=%d, skipped=%d, fallbacks=%d",
		tourType, result.Requested, result.Fetched, result.Skipped, result.Fallbacks)
	handlers.RespondJSON(w, http.StatusOK, response)
}
