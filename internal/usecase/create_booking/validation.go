package create_booking

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TourType == "" {
		return fmt.Errorf("%w: tour type is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}

	if req.Children < 0 || req.Infants < 0 {
		return fmt.Errorf("%w: children and infants must not be negative", ErrInvalidInput)
	}

	if req.PartySize() > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.CustomerName == "" || len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is required and must not exceed %d characters",
			ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(requestDate, now time.Time) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
