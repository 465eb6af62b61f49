package get_tour_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/middleware"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/service/bookings"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/service/bookings/models"
)

const (
	msgInvalidTourType = "некорректный тип тура"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgTourNotFound    = "тур не найден"
	msgInvalidFilter   = "некорректный фильтр"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourType}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tourType, err := domain.ParseTourType(vars["tourType"])
	if err != nil {
		h.logger.Warn("GET /tours/{tourType}/bookings - Invalid tour type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourType)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /tours/{tourType}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq := &models.GetTourBookingsRequest{
		UserID:    userID,
		TourType:  tourType,
		StartDate: optionalParam(query.Get("startDate")),
		EndDate:   optionalParam(query.Get("endDate")),
		Status:    optionalParam(query.Get("status")),
	}

	// Получаем бронирования (сервис сам проверит права администратора)
	result, err := h.service.GetTourBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /tours/{tourType}/bookings - Access denied: tour_type=%s, user_id=%d",
				tourType, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrTourNotFound):
			h.logger.Warn("GET /tours/{tourType}/bookings - Tour not found: tour_type=%s", tourType)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /tours/{tourType}/bookings - Invalid filter: tour_type=%s, error=%v", tourType, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /tours/{tourType}/bookings - Failed to get bookings: tour_type=%s, error=%v",
				tourType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours/{tourType}/bookings - Bookings retrieved successfully: tour_type=%s, count=%d",
		tourType, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}

func optionalParam(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
