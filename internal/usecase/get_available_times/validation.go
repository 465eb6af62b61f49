package get_available_times

import (
	"fmt"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TourType == "" {
		return fmt.Errorf("%w: tour type is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	return nil
}
