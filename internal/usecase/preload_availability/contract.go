package preload_availability

import (
	"context"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// AvailabilityAdapter интерфейс адаптера источников доступности
type AvailabilityAdapter interface {
	FetchDay(ctx context.Context, tourType domain.TourType, date time.Time) (*domain.DayAvailability, error)
}

// AvailabilityCache интерфейс preload-кэша
type AvailabilityCache interface {
	IsStale(tourType domain.TourType, dateKey string) bool
	SetAll(tourType domain.TourType, days []*domain.DayAvailability)
}

// TourConfigProvider интерфейс провайдера конфигурации туров
type TourConfigProvider interface {
	Get(tourType domain.TourType) (*domain.TourConfig, error)
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
