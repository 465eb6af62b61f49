package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

func TestCutoffPolicy_IsSlotBookable(t *testing.T) {
	policy := CutoffPolicy{
		Hours:                24,
		HoursWithParticipant: 12,
	}
	tourDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	slot := types.TimeString("18:00") // старт 2026-03-20 18:00

	tests := []struct {
		name            string
		now             time.Time
		hasParticipants bool
		want            bool
	}{
		{
			name: "well before cutoff",
			now:  time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "exactly at cutoff boundary",
			now:  time.Date(2026, 3, 19, 18, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "one minute inside cutoff",
			now:  time.Date(2026, 3, 19, 18, 1, 0, 0, time.UTC),
			want: false,
		},
		{
			name:            "inside default cutoff but slot already has participants",
			now:             time.Date(2026, 3, 19, 22, 0, 0, 0, time.UTC),
			hasParticipants: true,
			want:            true,
		},
		{
			name:            "inside even the participant cutoff",
			now:             time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
			hasParticipants: true,
			want:            false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.IsSlotBookable(tourDate, slot, tt.now, tt.hasParticipants)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCutoffPolicy_NextDayRule(t *testing.T) {
	policy := CutoffPolicy{
		Hours:                1,
		HoursWithParticipant: 1,
		NextDayCutoffTime:    "20:00",
	}
	slot := types.TimeString("09:00")

	today := time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)

	t.Run("tomorrow open before the evening cutoff", func(t *testing.T) {
		now := time.Date(2026, 3, 19, 19, 59, 0, 0, time.UTC)
		got, err := policy.IsSlotBookable(tomorrow, slot, now, false)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("tomorrow closed from the cutoff minute on", func(t *testing.T) {
		now := time.Date(2026, 3, 19, 20, 0, 0, 0, time.UTC)
		got, err := policy.IsSlotBookable(tomorrow, slot, now, false)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("day after tomorrow unaffected", func(t *testing.T) {
		now := time.Date(2026, 3, 19, 23, 0, 0, 0, time.UTC)
		got, err := policy.IsSlotBookable(dayAfter, slot, now, false)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("rule disabled when time is empty", func(t *testing.T) {
		open := CutoffPolicy{Hours: 1, HoursWithParticipant: 1}
		now := time.Date(2026, 3, 19, 23, 0, 0, 0, time.UTC)
		got, err := open.IsSlotBookable(tomorrow, slot, now, false)
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestCutoffPolicy_MalformedSlotTime(t *testing.T) {
	policy := CutoffPolicy{Hours: 24, HoursWithParticipant: 12}
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Нечитаемое время - ошибка, слот должен быть отброшен вызывающим
	bookable, err := policy.IsSlotBookable(date, "25:99", now, false)
	require.Error(t, err)
	assert.False(t, bookable)
}
