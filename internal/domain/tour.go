package domain

import (
	"fmt"
	"strings"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// TourType canonical tour identifier.
type TourType string

const (
	TourNight            TourType = "NIGHT_TOUR"
	TourMorning          TourType = "MORNING_TOUR"
	TourUji              TourType = "UJI_TOUR"
	TourGion             TourType = "GION_TOUR"
	TourMusic            TourType = "MUSIC_TOUR"
	TourMusicPerformance TourType = "MUSIC_PERFORMANCE"
)

// AllTourTypes all known tour types in declaration order.
var AllTourTypes = []TourType{
	TourNight,
	TourMorning,
	TourUji,
	TourGion,
	TourMusic,
	TourMusicPerformance,
}

// tourTypeAliases historical names still arriving from older clients.
var tourTypeAliases = map[string]TourType{
	"UJI_WALKING_TOUR":        TourUji,
	"GION_EARLY_MORNING_TOUR": TourGion,
	"KYOTO_LIVE_MUSIC_TOUR":   TourMusic,
}

// ParseTourType normalizes a raw identifier (case, dashes, spaces) and
// resolves known aliases. Unknown values are an error, never a default.
func ParseTourType(raw string) (TourType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	if alias, ok := tourTypeAliases[normalized]; ok {
		return alias, nil
	}

	for _, t := range AllTourTypes {
		if string(t) == normalized {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown tour type %q", raw)
}

func (t TourType) String() string {
	return string(t)
}

// UsesLocalSlotTable reports whether availability for the tour lives in
// the local time_slots table instead of the external provider.
func (t TourType) UsesLocalSlotTable() bool {
	return t == TourUji || t == TourMusicPerformance
}

// TourConfig static per-tour configuration loaded at startup.
type TourConfig struct {
	Type            TourType
	MaxParticipants int                // вместимость одного слота
	TimeSlots       []types.TimeString // номинальные слоты в порядке конфигурации
	Cutoff          CutoffPolicy
}

// HasSlot reports whether the time is one of the tour's nominal slots.
func (c *TourConfig) HasSlot(t types.TimeString) bool {
	for _, slot := range c.TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
