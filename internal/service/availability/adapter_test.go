package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/ptr"
)

type mockTimeSlotRepo struct {
	slots  []domain.TimeSlot
	hasAny bool
	err    error
}

func (m *mockTimeSlotRepo) GetByTourAndDate(_ context.Context, _ domain.TourType, _ time.Time) ([]domain.TimeSlot, error) {
	return m.slots, m.err
}

func (m *mockTimeSlotRepo) HasAnyAvailability(_ context.Context, _ domain.TourType, _ time.Time) (bool, error) {
	return m.hasAny, m.err
}

type mockBokun struct {
	slots []domain.TimeSlot
	err   error
	calls int
}

func (m *mockBokun) GetAvailableTimeSlots(_ context.Context, _ domain.TourType, _ time.Time) ([]domain.TimeSlot, error) {
	m.calls++
	return m.slots, m.err
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testDate = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
)

func newTestAdapter(repo *mockTimeSlotRepo, bokun *mockBokun) *Adapter {
	return NewAdapter(repo, bokun, nopLogger{}).WithTimeProvider(&fixedTime{testNow})
}

func TestFetchDay_LocalTableTour(t *testing.T) {
	repo := &mockTimeSlotRepo{slots: []domain.TimeSlot{
		{Time: "10:00", AvailableSpots: ptr.Ptr(4)},
		{Time: "13:00", AvailableSpots: ptr.Ptr(2)},
	}}
	bokun := &mockBokun{}
	adapter := newTestAdapter(repo, bokun)

	day, err := adapter.FetchDay(context.Background(), domain.TourUji, testDate)
	require.NoError(t, err)

	assert.Equal(t, domain.SourceDatabase, day.Source)
	assert.Equal(t, "2026-06-10", day.DateKey)
	assert.True(t, day.HasAvailability)
	assert.Len(t, day.TimeSlots, 2)
	assert.Equal(t, testNow, day.FetchedAt)
	// Локальный тур не трогает внешний источник
	assert.Equal(t, 0, bokun.calls)
}

func TestFetchDay_LocalTableEmpty(t *testing.T) {
	adapter := newTestAdapter(&mockTimeSlotRepo{}, &mockBokun{})

	day, err := adapter.FetchDay(context.Background(), domain.TourUji, testDate)
	require.NoError(t, err)
	assert.False(t, day.HasAvailability)
}

func TestFetchDay_ExternalTour(t *testing.T) {
	bokun := &mockBokun{slots: []domain.TimeSlot{
		{Time: "18:00", AvailableSpots: ptr.Ptr(6)},
	}}
	adapter := newTestAdapter(&mockTimeSlotRepo{}, bokun)

	day, err := adapter.FetchDay(context.Background(), domain.TourNight, testDate)
	require.NoError(t, err)

	assert.Equal(t, domain.SourceExternal, day.Source)
	assert.True(t, day.HasAvailability)
	assert.Equal(t, 1, bokun.calls)
}

func TestFetchDay_ExternalSoldOut(t *testing.T) {
	// Слоты есть, но мест нигде нет - день без доступности
	bokun := &mockBokun{slots: []domain.TimeSlot{
		{Time: "18:00", AvailableSpots: ptr.Ptr(0)},
	}}
	adapter := newTestAdapter(&mockTimeSlotRepo{}, bokun)

	day, err := adapter.FetchDay(context.Background(), domain.TourNight, testDate)
	require.NoError(t, err)
	assert.False(t, day.HasAvailability)
}

func TestFetchDay_ErrorsAreNotSwallowed(t *testing.T) {
	t.Run("external failure", func(t *testing.T) {
		bokun := &mockBokun{err: errors.New("timeout")}
		adapter := newTestAdapter(&mockTimeSlotRepo{}, bokun)

		_, err := adapter.FetchDay(context.Background(), domain.TourNight, testDate)
		assert.ErrorIs(t, err, ErrFetchFailed)
	})

	t.Run("database failure", func(t *testing.T) {
		repo := &mockTimeSlotRepo{err: errors.New("connection refused")}
		adapter := newTestAdapter(repo, &mockBokun{})

		_, err := adapter.FetchDay(context.Background(), domain.TourUji, testDate)
		assert.ErrorIs(t, err, ErrFetchFailed)
	})
}

func TestHasAnySignal(t *testing.T) {
	t.Run("local table tour", func(t *testing.T) {
		adapter := newTestAdapter(&mockTimeSlotRepo{hasAny: true}, &mockBokun{})
		has, err := adapter.HasAnySignal(context.Background(), domain.TourMusicPerformance, testDate)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("external tour", func(t *testing.T) {
		bokun := &mockBokun{slots: []domain.TimeSlot{{Time: "18:00", AvailableSpots: ptr.Ptr(3)}}}
		adapter := newTestAdapter(&mockTimeSlotRepo{}, bokun)
		has, err := adapter.HasAnySignal(context.Background(), domain.TourNight, testDate)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("external tour with no seats", func(t *testing.T) {
		bokun := &mockBokun{slots: []domain.TimeSlot{{Time: "18:00", AvailableSpots: ptr.Ptr(0)}}}
		adapter := newTestAdapter(&mockTimeSlotRepo{}, bokun)
		has, err := adapter.HasAnySignal(context.Background(), domain.TourNight, testDate)
		require.NoError(t, err)
		assert.False(t, has)
	})
}
