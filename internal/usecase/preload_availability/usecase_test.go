package preload_availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

type mockAdapter struct {
	mu       sync.Mutex
	calls    int
	failDays map[string]bool // dateKey -> вернуть ошибку
}

func (m *mockAdapter) FetchDay(_ context.Context, _ domain.TourType, date time.Time) (*domain.DayAvailability, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	dateKey := domain.DateKeyOf(date)
	if m.failDays[dateKey] {
		return nil, errors.New("source unavailable")
	}
	return &domain.DayAvailability{
		DateKey:         dateKey,
		HasAvailability: true,
		Source:          domain.SourceExternal,
		FetchedAt:       date,
	}, nil
}

func (m *mockAdapter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockCache struct {
	mu    sync.Mutex
	fresh map[string]bool // dateKey -> запись свежая
	saved []*domain.DayAvailability
}

func (m *mockCache) IsStale(_ domain.TourType, dateKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.fresh[dateKey]
}

func (m *mockCache) SetAll(_ domain.TourType, days []*domain.DayAvailability) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, days...)
	if m.fresh == nil {
		m.fresh = make(map[string]bool)
	}
	for _, d := range days {
		m.fresh[d.DateKey] = true
	}
}

type mockTourConfigs struct {
	cfg *domain.TourConfig
	err error
}

func (m *mockTourConfigs) Get(_ domain.TourType) (*domain.TourConfig, error) {
	return m.cfg, m.err
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.TourConfig {
	return &domain.TourConfig{
		Type:            domain.TourNight,
		MaxParticipants: 12,
		TimeSlots:       []types.TimeString{"18:00"},
	}
}

func newTestUseCase(adapter *mockAdapter, cache *mockCache) *UseCase {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	return NewUseCase(adapter, cache, &mockTourConfigs{cfg: testConfig()}, 62, nopLogger{}).
		WithTimeProvider(&fixedTime{now})
}

func rangeRequest(startDay, endDay int) *Request {
	return &Request{
		TourType:  domain.TourNight,
		StartDate: time.Date(2026, 7, startDay, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, endDay, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_FetchesWholeRange(t *testing.T) {
	adapter := &mockAdapter{}
	cache := &mockCache{}
	uc := newTestUseCase(adapter, cache)

	resp, err := uc.Execute(context.Background(), rangeRequest(10, 16))
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Requested)
	assert.Equal(t, 7, resp.Fetched)
	assert.Equal(t, 0, resp.Skipped)
	assert.Equal(t, 0, resp.Fallbacks)
	assert.Equal(t, 7, adapter.callCount())
	assert.Len(t, cache.saved, 7)
}

func TestExecute_RepeatWithinTTLIsIdempotent(t *testing.T) {
	adapter := &mockAdapter{}
	cache := &mockCache{}
	uc := newTestUseCase(adapter, cache)

	_, err := uc.Execute(context.Background(), rangeRequest(10, 16))
	require.NoError(t, err)
	require.Equal(t, 7, adapter.callCount())

	// Повторный прогрев того же диапазона: все записи свежие,
	// новых запросов к источникам нет
	resp, err := uc.Execute(context.Background(), rangeRequest(10, 16))
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Requested)
	assert.Equal(t, 0, resp.Fetched)
	assert.Equal(t, 7, resp.Skipped)
	assert.Equal(t, 7, adapter.callCount())
}

func TestExecute_PartialOverlapFetchesOnlyStaleDates(t *testing.T) {
	adapter := &mockAdapter{}
	cache := &mockCache{}
	uc := newTestUseCase(adapter, cache)

	_, err := uc.Execute(context.Background(), rangeRequest(10, 12))
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), rangeRequest(11, 14))
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Requested)
	assert.Equal(t, 2, resp.Fetched) // только 13 и 14
	assert.Equal(t, 2, resp.Skipped)
}

func TestExecute_SourceFailureDegradesToFallback(t *testing.T) {
	adapter := &mockAdapter{failDays: map[string]bool{"2026-07-11": true}}
	cache := &mockCache{}
	uc := newTestUseCase(adapter, cache)

	resp, err := uc.Execute(context.Background(), rangeRequest(10, 12))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Fetched)
	assert.Equal(t, 1, resp.Fallbacks)
	require.Len(t, cache.saved, 3)

	for _, d := range cache.saved {
		if d.DateKey == "2026-07-11" {
			assert.Equal(t, domain.SourceFallback, d.Source)
			assert.True(t, d.HasAvailability)
			require.Len(t, d.TimeSlots, 1)
			assert.Equal(t, types.TimeString("18:00"), d.TimeSlots[0].Time)
			assert.Nil(t, d.TimeSlots[0].AvailableSpots)
		} else {
			assert.Equal(t, domain.SourceExternal, d.Source)
		}
	}
}

func TestExecute_RangeValidation(t *testing.T) {
	adapter := &mockAdapter{}
	uc := newTestUseCase(adapter, &mockCache{})

	t.Run("range too wide", func(t *testing.T) {
		req := &Request{
			TourType:  domain.TourNight,
			StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrRangeTooWide)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), rangeRequest(16, 10))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("single day range", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), rangeRequest(10, 10))
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Requested)
	})

	assert.Equal(t, 1, adapter.callCount())
}

func TestExecute_TourNotFound(t *testing.T) {
	uc := NewUseCase(&mockAdapter{}, &mockCache{}, &mockTourConfigs{err: errors.New("nope")}, 62, nopLogger{})
	_, err := uc.Execute(context.Background(), rangeRequest(10, 12))
	assert.ErrorIs(t, err, ErrTourNotFound)
}
