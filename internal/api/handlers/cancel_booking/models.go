package cancel_booking

// CancelBookingRequest HTTP request body
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
