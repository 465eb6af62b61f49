package models

import (
	"errors"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID      int64   `json:"userId"`
	RequesterID int64   `json:"-"` // кто запрашивает; историю видит владелец или администратор
	Status      *string `json:"status,omitempty"`
}

// GetTourBookingsRequest запрос бэк-офиса на список бронирований тура
type GetTourBookingsRequest struct {
	UserID    int64
	TourType  domain.TourType
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
	Status    *string
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetTourBookingsRequest) ToDomainFilter() (domain.TourBookingsFilter, error) {
	filter := domain.TourBookingsFilter{TourType: r.TourType}

	if r.StartDate != nil {
		start, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return domain.TourBookingsFilter{}, ErrInvalidDate
		}
		filter.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return domain.TourBookingsFilter{}, ErrInvalidDate
		}
		filter.EndDate = &end
	}
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.TourBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"userId"`
	TourType           string  `json:"tourType"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	Adults             int     `json:"adults"`
	Children           int     `json:"children"`
	Infants            int     `json:"infants"`
	Status             string  `json:"status"`
	CustomerName       string  `json:"customerName"`
	CustomerEmail      string  `json:"customerEmail"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		TourType:           string(b.TourType),
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		Adults:             b.Adults,
		Children:           b.Children,
		Infants:            b.Infants,
		Status:             string(b.Status),
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	for _, status := range domain.AllStatuses {
		if s == string(status) {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}
