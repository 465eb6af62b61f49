package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

func day(dateKey string, fetchedAt time.Time) *domain.DayAvailability {
	return &domain.DayAvailability{
		DateKey:         dateKey,
		HasAvailability: true,
		FetchedAt:       fetchedAt,
		Source:          domain.SourceExternal,
	}
}

func TestCache_GetFresh(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache := NewWithClock(5*time.Minute, func() time.Time { return now })

	cache.Set(domain.TourNight, day("2026-05-10", base))

	entry, ok := cache.GetFresh(domain.TourNight, "2026-05-10")
	require.True(t, ok)
	assert.Equal(t, "2026-05-10", entry.DateKey)

	// Другой тур и другая дата - отдельные ключи
	_, ok = cache.GetFresh(domain.TourMorning, "2026-05-10")
	assert.False(t, ok)
	_, ok = cache.GetFresh(domain.TourNight, "2026-05-11")
	assert.False(t, ok)

	// За секунду до истечения TTL запись еще свежая
	now = base.Add(5*time.Minute - time.Second)
	_, ok = cache.GetFresh(domain.TourNight, "2026-05-10")
	assert.True(t, ok)

	// Ровно на границе TTL запись считается устаревшей
	now = base.Add(5 * time.Minute)
	_, ok = cache.GetFresh(domain.TourNight, "2026-05-10")
	assert.False(t, ok)
}

func TestCache_StaleEntryRemainsReadable(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache := NewWithClock(5*time.Minute, func() time.Time { return now })

	cache.Set(domain.TourNight, day("2026-05-10", base))
	now = base.Add(time.Hour)

	// Устаревшая запись не вытесняется: Get её видит, GetFresh - нет
	assert.NotNil(t, cache.Get(domain.TourNight, "2026-05-10"))
	_, ok := cache.GetFresh(domain.TourNight, "2026-05-10")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_IsStale(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache := NewWithClock(5*time.Minute, func() time.Time { return now })

	// Отсутствующая запись считается устаревшей
	assert.True(t, cache.IsStale(domain.TourNight, "2026-05-10"))

	cache.Set(domain.TourNight, day("2026-05-10", base))
	assert.False(t, cache.IsStale(domain.TourNight, "2026-05-10"))

	now = base.Add(10 * time.Minute)
	assert.True(t, cache.IsStale(domain.TourNight, "2026-05-10"))
}

func TestCache_SetOverwrites(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cache := NewWithClock(5*time.Minute, func() time.Time { return base })

	first := day("2026-05-10", base)
	cache.Set(domain.TourNight, first)

	second := day("2026-05-10", base)
	second.HasAvailability = false
	cache.Set(domain.TourNight, second)

	entry := cache.Get(domain.TourNight, "2026-05-10")
	require.NotNil(t, entry)
	assert.False(t, entry.HasAvailability)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_SetAll(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cache := NewWithClock(5*time.Minute, func() time.Time { return base })

	cache.SetAll(domain.TourUji, []*domain.DayAvailability{
		day("2026-05-10", base),
		day("2026-05-11", base),
		day("2026-05-12", base),
	})

	assert.Equal(t, 3, cache.Len())
	_, ok := cache.GetFresh(domain.TourUji, "2026-05-11")
	assert.True(t, ok)
}
