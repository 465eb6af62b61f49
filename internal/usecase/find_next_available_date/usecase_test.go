package find_next_available_date

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

type mockAdapter struct {
	availableFrom string // dateKey первой даты с сигналом; "" = сигнала нет
	failDays      map[string]bool
	scanned       []string
}

func (m *mockAdapter) HasAnySignal(_ context.Context, _ domain.TourType, date time.Time) (bool, error) {
	dateKey := domain.DateKeyOf(date)
	m.scanned = append(m.scanned, dateKey)

	if m.failDays[dateKey] {
		return false, errors.New("source unavailable")
	}
	return m.availableFrom != "" && dateKey >= m.availableFrom, nil
}

type mockTourConfigs struct {
	err error
}

func (m *mockTourConfigs) Get(_ domain.TourType) (*domain.TourConfig, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TourConfig{Type: domain.TourNight}, nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC)

func newTestUseCase(adapter *mockAdapter, horizonDays int) *UseCase {
	return NewUseCase(adapter, &mockTourConfigs{}, horizonDays, nopLogger{}).
		WithTimeProvider(&fixedTime{testNow})
}

func TestExecute_FindsFirstDateWithSignal(t *testing.T) {
	adapter := &mockAdapter{availableFrom: "2026-08-05"}
	uc := newTestUseCase(adapter, 180)

	resp, err := uc.Execute(context.Background(), &Request{TourType: domain.TourNight})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	assert.Equal(t, "2026-08-05", domain.DateKeyOf(resp.Date))
	// Скан последовательный, начиная с сегодня, и останавливается на находке
	assert.Equal(t, []string{"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05"}, adapter.scanned)
}

func TestExecute_TodayCounts(t *testing.T) {
	adapter := &mockAdapter{availableFrom: "2026-08-01"}
	uc := newTestUseCase(adapter, 180)

	resp, err := uc.Execute(context.Background(), &Request{TourType: domain.TourNight})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	assert.Equal(t, "2026-08-01", domain.DateKeyOf(resp.Date))
	assert.Len(t, adapter.scanned, 1)
}

func TestExecute_PerDayErrorSkipsDate(t *testing.T) {
	adapter := &mockAdapter{
		availableFrom: "2026-08-03",
		failDays:      map[string]bool{"2026-08-03": true},
	}
	uc := newTestUseCase(adapter, 180)

	resp, err := uc.Execute(context.Background(), &Request{TourType: domain.TourNight})
	require.NoError(t, err)

	// 3-е августа отвалилось с ошибкой и было пропущено, не прервав скан
	assert.True(t, resp.Found)
	assert.Equal(t, "2026-08-04", domain.DateKeyOf(resp.Date))
}

func TestExecute_NothingWithinHorizon(t *testing.T) {
	adapter := &mockAdapter{}
	uc := newTestUseCase(adapter, 14)

	resp, err := uc.Execute(context.Background(), &Request{TourType: domain.TourNight})
	require.NoError(t, err)

	assert.False(t, resp.Found)
	// При неудаче Date указывает на сегодня
	assert.Equal(t, "2026-08-01", domain.DateKeyOf(resp.Date))
	// Горизонт включает сегодня и еще horizonDays дней
	assert.Len(t, adapter.scanned, 15)
}

func TestExecute_ContextCancellation(t *testing.T) {
	adapter := &mockAdapter{}
	uc := newTestUseCase(adapter, 180)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, &Request{TourType: domain.TourNight})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_TourNotFound(t *testing.T) {
	uc := NewUseCase(&mockAdapter{}, &mockTourConfigs{err: errors.New("nope")}, 180, nopLogger{}).
		WithTimeProvider(&fixedTime{testNow})

	_, err := uc.Execute(context.Background(), &Request{TourType: domain.TourNight})
	assert.ErrorIs(t, err, ErrTourNotFound)
}
