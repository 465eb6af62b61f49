package check_date_full

import (
	"context"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTourWithFilter(ctx context.Context, filter domain.TourBookingsFilter) ([]*domain.Booking, error)
}

// TourConfigProvider интерфейс провайдера конфигурации туров
type TourConfigProvider interface {
	Get(tourType domain.TourType) (*domain.TourConfig, error)
}

// AvailabilityCache интерфейс preload-кэша
type AvailabilityCache interface {
	GetFresh(tourType domain.TourType, dateKey string) (*domain.DayAvailability, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
