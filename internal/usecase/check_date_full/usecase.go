package check_date_full

import (
	"context"
	"fmt"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// UseCase use case проверки "заполнена ли дата" для ячейки календаря.
// Применяет ту же политику слияния, что и получение доступных времен, но
// коротко замыкается на первом слоте с достаточной вместимостью.
//
// Отсечка по времени здесь НЕ проверяется: день с единственным слотом,
// ушедшим за отсечку, отвечает "не заполнен", хотя список времен для него
// пуст. Асимметрия унаследована от исходного поведения продукта и
// зафиксирована тестами; календарная ячейка ошибается только в
// оптимистичную сторону, авторитетен список времен.
type UseCase struct {
	bookingRepo BookingRepository
	tourConfigs TourConfigProvider
	cache       AvailabilityCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tourConfigs TourConfigProvider,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		tourConfigs: tourConfigs,
		cache:       cache,
		logger:      logger,
	}
}

// Execute выполняет use case проверки заполненности даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckDateFull: tour_type=%s, date=%s, party_size=%d",
		req.TourType, req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckDateFull: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию тура
	tourCfg, err := uc.tourConfigs.Get(req.TourType)
	if err != nil {
		uc.logger.Warn("CheckDateFull: tour_type=%s not configured", req.TourType)
		return nil, ErrTourNotFound
	}

	// 3. Внешний сигнал из preload-кэша (миссинг/стейл = сигнала нет)
	dateKey := domain.DateKeyOf(req.Date)
	cached, _ := uc.cache.GetFresh(req.TourType, dateKey)

	// 4. Леджер участников по подтвержденным бронированиям
	filter := domain.TourBookingsFilter{
		TourType:      req.TourType,
		ConfirmedOnly: true,
	}
	bookings, err := uc.bookingRepo.GetByTourWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckDateFull: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	ledger := domain.BuildParticipantsByDate(bookings)

	// 5. Первый же слот с вместимостью означает "не заполнен"
	isFull := true
	useExternal := cached != nil && !cached.IsFallback()

	var slots []domain.TimeSlot
	if useExternal {
		slots = cached.TimeSlots
	} else {
		slots = make([]domain.TimeSlot, len(tourCfg.TimeSlots))
		for i, t := range tourCfg.TimeSlots {
			slots[i] = domain.TimeSlot{Time: t}
		}
	}

	for _, slot := range slots {
		if useExternal && slot.HasExternalSignal() {
			if *slot.AvailableSpots >= req.PartySize {
				isFull = false
				break
			}
			continue
		}
		if tourCfg.MaxParticipants-ledger.Count(dateKey, slot.Time) >= req.PartySize {
			isFull = false
			break
		}
	}

	uc.logger.Info("CheckDateFull: tour_type=%s date=%s party_size=%d -> is_full=%t",
		req.TourType, dateKey, req.PartySize, isFull)

	return &Response{
		TourType: req.TourType,
		Date:     req.Date,
		IsFull:   isFull,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TourType == "" {
		return fmt.Errorf("%w: tour type is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}
	return nil
}
