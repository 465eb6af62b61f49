package get_available_times

import (
	"context"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByTourWithFilter получает бронирования тура; движок запрашивает
	// полный список подтвержденных и пересобирает леджер участников целиком
	GetByTourWithFilter(ctx context.Context, filter domain.TourBookingsFilter) ([]*domain.Booking, error)
}

// TourConfigProvider интерфейс провайдера конфигурации туров
type TourConfigProvider interface {
	Get(tourType domain.TourType) (*domain.TourConfig, error)
}

// AvailabilityCache интерфейс preload-кэша.
// Движок никогда не ходит в источники синхронно: отсутствующая или
// устаревшая запись трактуется как "внешнего сигнала нет".
type AvailabilityCache interface {
	GetFresh(tourType domain.TourType, dateKey string) (*domain.DayAvailability, bool)
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
