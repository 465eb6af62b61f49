package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "09:00", want: "09:00"},
		{name: "valid evening time", input: "18:30", want: "18:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_IsBeforeAfter(t *testing.T) {
	morning := TimeString("09:00")
	evening := TimeString("18:00")

	assert.True(t, morning.IsBefore(evening))
	assert.False(t, evening.IsBefore(morning))
	assert.True(t, evening.IsAfter(morning))
	assert.False(t, morning.IsAfter(morning))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("10:30")

	got, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	// Выход за пределы суток - ошибка, а не перенос на следующий день
	_, err = TimeString("23:30").AddMinutes(45)
	require.Error(t, err)
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("18:00").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC), got)

	_, err = TimeString("bogus").At(date)
	require.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	got, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	// Postgres колонка TIME отдаёт секунды
	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.Error(t, ts.Scan(42))
}
