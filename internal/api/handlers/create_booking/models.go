package create_booking

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	createBooking "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request body
type CreateBookingRequest struct {
	TourType      string  `json:"tourType"`
	Date          string  `json:"date"`      // YYYY-MM-DD
	StartTime     string  `json:"startTime"` // HH:MM
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Infants       int     `json:"infants"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Notes         *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
	TourType  string `json:"tourType"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest создает запрос use case из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	tourType, err := domain.ParseTourType(r.TourType)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := domain.ParseSlotTime(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		TourType:      tourType,
		Date:          date,
		StartTime:     startTime,
		Adults:        r.Adults,
		Children:      r.Children,
		Infants:       r.Infants,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID: resp.BookingID,
		Status:    string(resp.Status),
		TourType:  resp.TourType.String(),
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
