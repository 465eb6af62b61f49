package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

func TestParseTourType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TourType
		wantErr bool
	}{
		{name: "canonical", input: "NIGHT_TOUR", want: TourNight},
		{name: "lowercase", input: "night_tour", want: TourNight},
		{name: "dashes", input: "morning-tour", want: TourMorning},
		{name: "spaces", input: "gion tour", want: TourGion},
		{name: "surrounding whitespace", input: "  UJI_TOUR ", want: TourUji},
		{name: "legacy uji alias", input: "uji-walking-tour", want: TourUji},
		{name: "legacy gion alias", input: "GION_EARLY_MORNING_TOUR", want: TourGion},
		{name: "legacy music alias", input: "kyoto-live-music-tour", want: TourMusic},
		{name: "performance", input: "music_performance", want: TourMusicPerformance},
		{name: "unknown", input: "SNOW_TOUR", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTourType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTourType_UsesLocalSlotTable(t *testing.T) {
	assert.True(t, TourUji.UsesLocalSlotTable())
	assert.True(t, TourMusicPerformance.UsesLocalSlotTable())

	assert.False(t, TourNight.UsesLocalSlotTable())
	assert.False(t, TourMorning.UsesLocalSlotTable())
	assert.False(t, TourGion.UsesLocalSlotTable())
	assert.False(t, TourMusic.UsesLocalSlotTable())
}

func TestTourConfig_HasSlot(t *testing.T) {
	cfg := &TourConfig{
		Type:      TourUji,
		TimeSlots: []types.TimeString{"10:00", "13:00"},
	}

	assert.True(t, cfg.HasSlot("10:00"))
	assert.True(t, cfg.HasSlot("13:00"))
	assert.False(t, cfg.HasSlot("18:00"))
}
