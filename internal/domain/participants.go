package domain

import "github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"

// ParticipantsByDate maps dateKey -> slot time -> booked participant count.
// It is a pure fold over a confirmed-booking list and is rebuilt from scratch
// whenever the booking list is re-fetched; there is no incremental update path.
type ParticipantsByDate map[string]map[types.TimeString]int

// BuildParticipantsByDate folds bookings into per-date, per-slot participant
// totals. Only confirmed bookings count; a booking contributes adults+children.
func BuildParticipantsByDate(bookings []*Booking) ParticipantsByDate {
	ledger := make(ParticipantsByDate)

	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}

		dateKey := DateKeyOf(b.BookingDate)
		if ledger[dateKey] == nil {
			ledger[dateKey] = make(map[types.TimeString]int)
		}
		ledger[dateKey][b.StartTime] += b.Participants()
	}

	return ledger
}

// Count returns the booked participant total for a slot; absent slots are 0.
func (p ParticipantsByDate) Count(dateKey string, slot types.TimeString) int {
	return p[dateKey][slot]
}

// HasParticipants reports whether the slot already holds at least one participant
func (p ParticipantsByDate) HasParticipants(dateKey string, slot types.TimeString) bool {
	return p.Count(dateKey, slot) > 0
}
