package availability

import (
	"context"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// TimeSlotRepository интерфейс репозитория локальной таблицы слотов
type TimeSlotRepository interface {
	GetByTourAndDate(ctx context.Context, tourType domain.TourType, date time.Time) ([]domain.TimeSlot, error)
	HasAnyAvailability(ctx context.Context, tourType domain.TourType, date time.Time) (bool, error)
}

// BokunClient интерфейс клиента внешнего источника броней
type BokunClient interface {
	GetAvailableTimeSlots(ctx context.Context, tourType domain.TourType, date time.Time) ([]domain.TimeSlot, error)
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
