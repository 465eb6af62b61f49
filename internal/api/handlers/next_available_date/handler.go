package next_available_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	findNextAvailableDate "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/find_next_available_date"
)

const (
	msgInvalidTourType = "некорректный тип тура"
	msgTourNotFound    = "тур не найден"
)

type Handler struct {
	useCase FindNextAvailableDateUseCase
	logger  Logger
}

func NewHandler(useCase FindNextAvailableDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourType}/next-available-date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tourType, err := domain.ParseTourType(vars["tourType"])
	if err != nil {
		h.logger.Warn("GET /tours/{tourType}/next-available-date - Invalid tour type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourType)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &findNextAvailableDate.Request{TourType: tourType})
	if err != nil {
		switch {
		case errors.Is(err, findNextAvailableDate.ErrTourNotFound):
			h.logger.Warn("GET /tours/{tourType}/next-available-date - Tour not found: tour_type=%s", tourType)
			handlers.RespondNotFound(w, msgTourNotFound)

		default:
			h.logger.Error("GET /tours/{tourType}/next-available-date - Failed to scan: tour_type=%s, error=%v",
				tourType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tours/{tourType}/next-available-date - Scan finished: tour_type=%s, date=%s, found=%t",
		tourType, response.Date, result.Found)
	handlers.RespondJSON(w, http.StatusOK, response)
}
