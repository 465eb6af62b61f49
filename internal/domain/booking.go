package domain

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// BookingStatus represents the payment-driven lifecycle of a booking
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "PENDING_PAYMENT"
	StatusConfirmed      BookingStatus = "CONFIRMED"
	StatusCancelled      BookingStatus = "CANCELLED"
)

// Booking represents a tour booking in the system
type Booking struct {
	ID          int64
	UserID      int64
	TourType    TourType
	BookingDate time.Time
	StartTime   types.TimeString
	Adults      int
	Children    int
	Infants     int
	Status      BookingStatus

	// Denormalized customer data for history
	CustomerName  string
	CustomerEmail string

	// Payment linkage; written by the payment webhook flow, read-only here
	PaymentIntentID *string

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Participants returns the number of seats the booking occupies.
// Infants ride free and do not count against slot capacity.
func (b *Booking) Participants() int {
	return b.Adults + b.Children
}

// IsConfirmed returns true if payment has completed for the booking
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusConfirmed
}

// TourBookingsFilter фильтр для получения бронирований тура
type TourBookingsFilter struct {
	TourType      TourType       // Обязательный параметр
	StartDate     *time.Time     // Начало периода (опционально)
	EndDate       *time.Time     // Конец периода (опционально)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	ConfirmedOnly bool           // Только подтвержденные (для подсчёта занятых мест)
}
