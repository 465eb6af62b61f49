package check_date_full

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/ptr"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetByTourWithFilter(_ context.Context, _ domain.TourBookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type mockTourConfigs struct {
	cfg *domain.TourConfig
	err error
}

func (m *mockTourConfigs) Get(_ domain.TourType) (*domain.TourConfig, error) {
	return m.cfg, m.err
}

type mockCache struct {
	entry *domain.DayAvailability
}

func (m *mockCache) GetFresh(_ domain.TourType, _ string) (*domain.DayAvailability, bool) {
	if m.entry == nil {
		return nil, false
	}
	return m.entry, true
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

func testConfig() *domain.TourConfig {
	return &domain.TourConfig{
		Type:            domain.TourUji,
		MaxParticipants: 10,
		TimeSlots:       []types.TimeString{"10:00", "14:00"},
		Cutoff:          domain.CutoffPolicy{Hours: 24, HoursWithParticipant: 12},
	}
}

func TestExecute_NotFullWhileAnySlotFits(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		{BookingDate: testDate, StartTime: "10:00", Adults: 10, Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, &mockTourConfigs{cfg: testConfig()}, &mockCache{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 1,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsFull)
}

func TestExecute_FullWhenNoSlotFits(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		{BookingDate: testDate, StartTime: "10:00", Adults: 9, Status: domain.StatusConfirmed},
		{BookingDate: testDate, StartTime: "14:00", Adults: 8, Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, &mockTourConfigs{cfg: testConfig()}, &mockCache{}, nopLogger{})

	// Для группы из 3 ни в одном слоте мест нет
	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 3,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsFull)

	// Но для группы из 2 день не заполнен
	resp, err = uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 2,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsFull)
}

func TestExecute_ExternalSignalDrivesFullness(t *testing.T) {
	repo := &mockBookingRepo{}
	cache := &mockCache{entry: &domain.DayAvailability{
		DateKey:         "2026-06-10",
		HasAvailability: true,
		Source:          domain.SourceExternal,
		FetchedAt:       testDate,
		TimeSlots: []domain.TimeSlot{
			{Time: "10:00", AvailableSpots: ptr.Ptr(1)},
			{Time: "14:00", AvailableSpots: ptr.Ptr(2)},
		},
	}}
	uc := NewUseCase(repo, &mockTourConfigs{cfg: testConfig()}, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 3,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsFull)

	resp, err = uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 2,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsFull)
}

func TestExecute_CutoffDoesNotAffectFullness(t *testing.T) {
	// Слот, ушедший за отсечку, все равно считается вместимостью:
	// день отвечает "не заполнен", хотя список времен для него был бы
	// пуст. Календарная ячейка ошибается только в оптимистичную сторону.
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, &mockTourConfigs{cfg: testConfig()}, &mockCache{}, nopLogger{})

	// Дата в прошлом относительно любого "сейчас" - отсечки здесь нет вовсе
	pastDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: pastDate, PartySize: 1,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsFull)
}

func TestExecute_FallbackEntryUsesLedger(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		{BookingDate: testDate, StartTime: "10:00", Adults: 10, Status: domain.StatusConfirmed},
		{BookingDate: testDate, StartTime: "14:00", Adults: 10, Status: domain.StatusConfirmed},
	}}
	cache := &mockCache{entry: domain.NewFallbackDay("2026-06-10", testConfig().TimeSlots, testDate)}
	uc := NewUseCase(repo, &mockTourConfigs{cfg: testConfig()}, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 1,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsFull)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("tour not found", func(t *testing.T) {
		uc := NewUseCase(&mockBookingRepo{}, &mockTourConfigs{err: errors.New("nope")}, &mockCache{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{TourType: domain.TourUji, Date: testDate, PartySize: 1})
		assert.ErrorIs(t, err, ErrTourNotFound)
	})

	t.Run("invalid party size", func(t *testing.T) {
		uc := NewUseCase(&mockBookingRepo{}, &mockTourConfigs{cfg: testConfig()}, &mockCache{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{TourType: domain.TourUji, Date: testDate, PartySize: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockBookingRepo{err: errors.New("connection refused")}
		uc := NewUseCase(repo, &mockTourConfigs{cfg: testConfig()}, &mockCache{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{TourType: domain.TourUji, Date: testDate, PartySize: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
