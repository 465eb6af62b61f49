package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// Adapter единая точка получения внешнего сигнала доступности.
// Для туров с локальной таблицей слотов источником служит БД, для остальных -
// внешний источник броней; результат нормализуется к domain.DayAvailability.
// Adapter не глотает ошибки: при сбое возвращает ErrFetchFailed, а решение
// о деградации принимает вызывающая сторона.
type Adapter struct {
	timeSlotRepo TimeSlotRepository
	bokunClient  BokunClient
	timeProvider TimeProvider
	logger       Logger
}

// NewAdapter создает адаптер источников доступности
func NewAdapter(
	timeSlotRepo TimeSlotRepository,
	bokunClient BokunClient,
	logger Logger,
) *Adapter {
	return &Adapter{
		timeSlotRepo: timeSlotRepo,
		bokunClient:  bokunClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы адаптера (для тестов)
func (a *Adapter) WithTimeProvider(tp TimeProvider) *Adapter {
	a.timeProvider = tp
	return a
}

// FetchDay возвращает доступность тура на дату из соответствующего источника
func (a *Adapter) FetchDay(ctx context.Context, tourType domain.TourType, date time.Time) (*domain.DayAvailability, error) {
	if tourType.UsesLocalSlotTable() {
		return a.fetchFromDatabase(ctx, tourType, date)
	}
	return a.fetchFromExternal(ctx, tourType, date)
}

// HasAnySignal проверяет, есть ли у тура хоть какой-то положительный сигнал
// доступности на дату. Используется сканом ближайшей свободной даты, который
// ходит в источники напрямую, минуя preload-кэш.
func (a *Adapter) HasAnySignal(ctx context.Context, tourType domain.TourType, date time.Time) (bool, error) {
	if tourType.UsesLocalSlotTable() {
		has, err := a.timeSlotRepo.HasAnyAvailability(ctx, tourType, date)
		if err != nil {
			return false, fmt.Errorf("%w: tour_type=%s date=%s: %v",
				ErrFetchFailed, tourType, domain.DateKeyOf(date), err)
		}
		return has, nil
	}

	day, err := a.fetchFromExternal(ctx, tourType, date)
	if err != nil {
		return false, err
	}
	return day.HasAvailability, nil
}

func (a *Adapter) fetchFromDatabase(ctx context.Context, tourType domain.TourType, date time.Time) (*domain.DayAvailability, error) {
	slots, err := a.timeSlotRepo.GetByTourAndDate(ctx, tourType, date)
	if err != nil {
		a.logger.Error("Availability: time_slots query failed for tour_type=%s date=%s: %v",
			tourType, domain.DateKeyOf(date), err)
		return nil, fmt.Errorf("%w: tour_type=%s date=%s: %v",
			ErrFetchFailed, tourType, domain.DateKeyOf(date), err)
	}

	// Репозиторий отдает только слоты с положительным остатком
	return &domain.DayAvailability{
		DateKey:         domain.DateKeyOf(date),
		HasAvailability: len(slots) > 0,
		TimeSlots:       slots,
		FetchedAt:       a.timeProvider.Now(),
		Source:          domain.SourceDatabase,
	}, nil
}

func (a *Adapter) fetchFromExternal(ctx context.Context, tourType domain.TourType, date time.Time) (*domain.DayAvailability, error) {
	slots, err := a.bokunClient.GetAvailableTimeSlots(ctx, tourType, date)
	if err != nil {
		a.logger.Warn("Availability: external fetch failed for tour_type=%s date=%s: %v",
			tourType, domain.DateKeyOf(date), err)
		return nil, fmt.Errorf("%w: tour_type=%s date=%s: %v",
			ErrFetchFailed, tourType, domain.DateKeyOf(date), err)
	}

	hasAvailability := false
	for _, slot := range slots {
		if slot.AvailableSpots != nil && *slot.AvailableSpots > 0 {
			hasAvailability = true
			break
		}
	}

	return &domain.DayAvailability{
		DateKey:         domain.DateKeyOf(date),
		HasAvailability: hasAvailability,
		TimeSlots:       slots,
		FetchedAt:       a.timeProvider.Now(),
		Source:          domain.SourceExternal,
	}, nil
}
