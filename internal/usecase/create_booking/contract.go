package create_booking

import (
	"context"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByTourWithFilter внутри транзакции блокирует строки даты (FOR UPDATE)
	GetByTourWithFilter(ctx context.Context, filter domain.TourBookingsFilter) ([]*domain.Booking, error)
}

// TourConfigProvider интерфейс провайдера конфигурации туров
type TourConfigProvider interface {
	Get(tourType domain.TourType) (*domain.TourConfig, error)
}

// AvailabilityAdapter интерфейс адаптера источников доступности.
// Checkout сверяется с внешним сигналом до транзакции; при недоступности
// источника проверка деградирует до локальной вместимости.
type AvailabilityAdapter interface {
	FetchDay(ctx context.Context, tourType domain.TourType, date time.Time) (*domain.DayAvailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
