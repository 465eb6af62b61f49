package find_next_available_date

import (
	"context"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// AvailabilityAdapter интерфейс адаптера источников доступности.
// Скан работает с источниками напрямую, минуя preload-кэш.
type AvailabilityAdapter interface {
	HasAnySignal(ctx context.Context, tourType domain.TourType, date time.Time) (bool, error)
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
