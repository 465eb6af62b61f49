package domain

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// AvailabilitySource identifies where a day's availability data came from
type AvailabilitySource string

const (
	// SourceDatabase - local time-slot table (tours not listed externally)
	SourceDatabase AvailabilitySource = "database"
	// SourceExternal - the third-party reservation source
	SourceExternal AvailabilitySource = "external"
	// SourceFallback - external fetch failed; nominal slots with no spot counts
	SourceFallback AvailabilitySource = "fallback"
)

// TimeSlot is one bookable start time on a given day.
// AvailableSpots == nil means there is no external signal for the slot and
// capacity math falls back to local participant counts.
type TimeSlot struct {
	Time           types.TimeString
	AvailableSpots *int
}

// HasExternalSignal reports whether the slot carries a remaining-seat count
func (s TimeSlot) HasExternalSignal() bool {
	return s.AvailableSpots != nil
}

// DayAvailability is the merged availability picture for a single date.
// Entries live only in the in-memory preload cache and are rebuilt on demand;
// nothing persists them.
type DayAvailability struct {
	DateKey         string // YYYY-MM-DD
	HasAvailability bool
	TimeSlots       []TimeSlot
	FetchedAt       time.Time
	Source          AvailabilitySource
}

// IsFallback reports whether the entry was synthesized after a fetch failure
func (d *DayAvailability) IsFallback() bool {
	return d.Source == SourceFallback
}

// IsStale reports whether the entry is older than ttl at the given time
func (d *DayAvailability) IsStale(now time.Time, ttl time.Duration) bool {
	return now.Sub(d.FetchedAt) >= ttl
}

// NewFallbackDay builds the degraded entry used when the external source is
// unreachable: the nominal configured slots, no spot counts, flagged so the
// engine applies local-only capacity math.
func NewFallbackDay(dateKey string, nominalSlots []types.TimeString, now time.Time) *DayAvailability {
	slots := make([]TimeSlot, len(nominalSlots))
	for i, t := range nominalSlots {
		slots[i] = TimeSlot{Time: t}
	}
	return &DayAvailability{
		DateKey:         dateKey,
		HasAvailability: true,
		TimeSlots:       slots,
		FetchedAt:       now,
		Source:          SourceFallback,
	}
}

// DateKeyOf formats t as a YYYY-MM-DD cache key
func DateKeyOf(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseSlotTime parses an "HH:MM" slot time string. A parse failure means the
/// slot must be dropped, never defaulted: substituting the current time here
// can flip bookability in either direction.
func ParseSlotTime(s string) (types.TimeString, error) {
	return types.NewTimeStringFromString(s)
}
