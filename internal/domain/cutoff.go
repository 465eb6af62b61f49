package domain

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// CutoffPolicy holds the per-tour booking cutoff rules.
// A slot stops accepting bookings Hours before its start time; once at least
// one participant already holds the slot the shorter HoursWithParticipant
// window applies instead. NextDayCutoffTime, when set, closes all of tomorrow
// as soon as the clock passes that time today, independent of per-slot cutoffs.
type CutoffPolicy struct {
	Hours                int
	HoursWithParticipant int
	NextDayCutoffTime    types.TimeString // "" = no next-day rule
}

// IsSlotBookable reports whether a slot starting at slotTime on date may still
// be booked at now. A malformed slot time returns an error and the caller is
// expected to drop the slot rather than guess.
func (p CutoffPolicy) IsSlotBookable(date time.Time, slotTime types.TimeString, now time.Time, hasParticipants bool) (bool, error) {
	slotStart, err := slotTime.At(date)
	if err != nil {
		return false, err
	}

	if closed, err := p.nextDayClosed(date, now); err != nil {
		return false, err
	} else if closed {
		return false, nil
	}

	cutoffHours := p.Hours
	if hasParticipants {
		cutoffHours = p.HoursWithParticipant
	}

	hoursUntilTour := slotStart.Sub(now).Hours()
	return hoursUntilTour >= float64(cutoffHours), nil
}

// nextDayClosed applies the next-day rule: if date is exactly tomorrow and the
// configured clock time has already passed today, the whole day is closed.
func (p CutoffPolicy) nextDayClosed(date, now time.Time) (bool, error) {
	if p.NextDayCutoffTime == "" {
		return false, nil
	}

	tomorrow := now.AddDate(0, 0, 1)
	if !isSameDay(date, tomorrow) {
		return false, nil
	}

	cutoffToday, err := p.NextDayCutoffTime.At(now)
	if err != nil {
		return false, err
	}
	return !now.Before(cutoffToday), nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
