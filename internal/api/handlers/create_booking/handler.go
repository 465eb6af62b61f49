package create_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/middleware"
	createBooking "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/create_booking"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidBody      = "некорректное тело запроса"
	msgTourNotFound     = "тур не найден"
	msgInvalidSlot      = "время не входит в расписание тура"
	msgSlotNotAvailable = "недостаточно мест в выбранном слоте"
	msgCutoffPassed     = "бронирование на это время уже закрыто"
	msgInvalidDate      = "некорректная дата бронирования"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := body.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: tour_type=%s, user_id=%d", body.TourType, userID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: tour_type=%s, time=%s, user_id=%d",
				body.TourType, body.StartTime, userID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: tour_type=%s, date=%s, time=%s, user_id=%d",
				body.TourType, body.Date, body.StartTime, userID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCutoffPassed):
			h.logger.Warn("POST /bookings - Cutoff passed: tour_type=%s, date=%s, time=%s, user_id=%d",
				body.TourType, body.Date, body.StartTime, userID)
			handlers.RespondConflict(w, msgCutoffPassed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: date=%s, user_id=%d", body.Date, userID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, tour_type=%s, date=%s, time=%s, user_id=%d",
		result.BookingID, result.TourType, body.Date, body.StartTime, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
