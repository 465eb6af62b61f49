package get_tour_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/service/tours"
)

const (
	msgInvalidTourType = "некорректный тип тура"
	msgTourNotFound    = "тур не найден"
)

type Handler struct {
	provider TourConfigProvider
	logger   Logger
}

func NewHandler(provider TourConfigProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/tours/{tourType}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tourType, err := domain.ParseTourType(vars["tourType"])
	if err != nil {
		h.logger.Warn("GET /tours/{tourType}/config - Invalid tour type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourType)
		return
	}

	cfg, err := h.provider.Get(tourType)
	if err != nil {
		switch {
		case errors.Is(err, tours.ErrTourNotConfigured):
			h.logger.Warn("GET /tours/{tourType}/config - Tour not found: tour_type=%s", tourType)
			handlers.RespondNotFound(w, msgTourNotFound)

		default:
			h.logger.Error("GET /tours/{tourType}/config - Failed to get config: tour_type=%s, error=%v", tourType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomainConfig(cfg)

	h.logger.Info("GET /tours/{tourType}/config - Config retrieved: tour_type=%s", tourType)
	handlers.RespondJSON(w, http.StatusOK, response)
}
