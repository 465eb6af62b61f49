package get_available_times

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

// --- mocks ---

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

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- fixtures ---

var (
	testDate = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	// За месяц до тура - все отсечки заведомо открыты
	testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
)

func testConfig() *domain.TourConfig {
	return &domain.TourConfig{
		Type:            domain.TourUji,
		MaxParticipants: 10,
		TimeSlots:       []types.TimeString{"10:00", "14:00"},
		Cutoff:          domain.CutoffPolicy{Hours: 24, HoursWithParticipant: 12},
	}
}

func confirmed(date time.Time, slot types.TimeString, adults int) *domain.Booking {
	return &domain.Booking{
		BookingDate: date,
		StartTime:   slot,
		Adults:      adults,
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *mockBookingRepo, cfg *mockTourConfigs, cache *mockCache) *UseCase {
	return NewUseCase(repo, cfg, cache, nopLogger{}).WithTimeProvider(&fixedTime{testNow})
}

// --- tests ---

func TestExecute_LocalCapacityFiltering(t *testing.T) {
	// 8 из 10 мест в 10:00 заняты; группа из 3 влезает только в 14:00
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		confirmed(testDate, "10:00", 8),
	}}
	uc := newTestUseCase(repo, &mockTourConfigs{cfg: testConfig()}, &mockCache{})

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"14:00"}, resp.Times)
	assert.Equal(t, domain.SourceFallback, resp.Source)

	// Группа из 2 помещается в оба слота
	resp, err = uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "14:00"}, resp.Times)
}

func TestExecute_ExternalSignalIsAuthoritative(t *testing.T) {
	// Внешний источник видит 2 места в 10:00, хотя локальный леджер пуст
	repo := &mockBookingRepo{}
	cache := &mockCache{entry: &domain.DayAvailability{
		DateKey:         "2026-06-10",
		HasAvailability: true,
		Source:          domain.SourceExternal,
		FetchedAt:       testNow,
		TimeSlots: []domain.TimeSlot{
			{Time: "10:00", AvailableSpots: ptr.Ptr(2)},
			{Time: "14:00", AvailableSpots: ptr.Ptr(10)},
		},
	}}
	uc := newTestUseCase(repo, &mockTourConfigs{cfg: testConfig()}, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"14:00"}, resp.Times)
	assert.Equal(t, domain.SourceExternal, resp.Source)
}

func TestExecute_ExternalSlotWithoutSignalUsesLedger(t *testing.T) {
	// У слота 14:00 нет счетчика мест - для него работает локальная
	// вместимость, у 10:00 внешний сигнал авторитетен
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		confirmed(testDate, "14:00", 9),
	}}
	cache := &mockCache{entry: &domain.DayAvailability{
		DateKey:         "2026-06-10",
		HasAvailability: true,
		Source:          domain.SourceExternal,
		FetchedAt:       testNow,
		TimeSlots: []domain.TimeSlot{
			{Time: "10:00", AvailableSpots: ptr.Ptr(5)},
			{Time: "14:00"},
		},
	}}
	uc := newTestUseCase(repo, &mockTourConfigs{cfg: testConfig()}, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 2,
	})
	require.NoError(t, err)

	// 14:00 отпадает: 10 - 9 = 1 < 2
	assert.Equal(t, []types.TimeString{"10:00"}, resp.Times)
}

func TestExecute_FallbackEntryIgnoresExternalCounts(t *testing.T) {
	// Fallback-запись означает "внешний источник недоступен":
	// расчет только по локальному леджеру
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		confirmed(testDate, "10:00", 10),
	}}
	cache := &mockCache{entry: domain.NewFallbackDay(
		"2026-06-10", testConfig().TimeSlots, testNow,
	)}
	uc := newTestUseCase(repo, &mockTourConfigs{cfg: testConfig()}, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"14:00"}, resp.Times)
	assert.Equal(t, domain.SourceFallback, resp.Source)
}

func TestExecute_CutoffDropsSlot(t *testing.T) {
	// За 19-23 часа до туров: пустой слот закрыт (отсечка 24ч), слот с
	// участником еще открыт (отсечка 12ч)
	nearNow := time.Date(2026, 6, 9, 15, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		confirmed(testDate, "10:00", 2),
	}}
	uc := NewUseCase(repo, &mockTourConfigs{cfg: testConfig()}, &mockCache{}, nopLogger{}).
		WithTimeProvider(&fixedTime{nearNow})

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00"}, resp.Times)
}

func TestExecute_SourceOrderPreserved(t *testing.T) {
	// Порядок слотов из источника не пересортировывается
	repo := &mockBookingRepo{}
	cache := &mockCache{entry: &domain.DayAvailability{
		DateKey:         "2026-06-10",
		HasAvailability: true,
		Source:          domain.SourceExternal,
		FetchedAt:       testNow,
		TimeSlots: []domain.TimeSlot{
			{Time: "14:00", AvailableSpots: ptr.Ptr(5)},
			{Time: "10:00", AvailableSpots: ptr.Ptr(5)},
		},
	}}
	uc := newTestUseCase(repo, &mockTourConfigs{cfg: testConfig()}, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"14:00", "10:00"}, resp.Times)
}

func TestExecute_UnparsableSlotTimeFailsClosed(t *testing.T) {
	repo := &mockBookingRepo{}
	cache := &mockCache{entry: &domain.DayAvailability{
		DateKey:         "2026-06-10",
		HasAvailability: true,
		Source:          domain.SourceExternal,
		FetchedAt:       testNow,
		TimeSlots: []domain.TimeSlot{
			{Time: "25:99", AvailableSpots: ptr.Ptr(5)},
			{Time: "14:00", AvailableSpots: ptr.Ptr(5)},
		},
	}}
	uc := newTestUseCase(repo, &mockTourConfigs{cfg: testConfig()}, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 1,
	})
	require.NoError(t, err)

	// Нечитаемый слот отброшен, а не подставлен "сейчас"
	assert.Equal(t, []types.TimeString{"14:00"}, resp.Times)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTourConfigs{cfg: testConfig()}, &mockCache{})

	_, err := uc.Execute(context.Background(), &Request{TourType: domain.TourUji, Date: testDate, PartySize: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TourType: domain.TourUji, Date: testDate, PartySize: 51})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TourType: domain.TourUji, PartySize: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TourNotFound(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTourConfigs{err: errors.New("not configured")}, &mockCache{})

	_, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 1,
	})
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, &mockTourConfigs{cfg: testConfig()}, &mockCache{})

	_, err := uc.Execute(context.Background(), &Request{
		TourType: domain.TourUji, Date: testDate, PartySize: 1,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
