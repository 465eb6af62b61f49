package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPartySize            = 1
	MaxPartySize            = 50
	MaxNotesLength          = 500
	MaxCancelReasonLength   = 500
	MaxCustomerNameLength   = 200
	NextAvailableScanMonths = 6 // горизонт поиска ближайшей свободной даты
)

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPendingPayment,
	StatusConfirmed,
	StatusCancelled,
}
