package get_available_times

import (
	"context"
	"fmt"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// UseCase use case получения доступных времен тура на дату.
// Сливает внешний сигнал доступности (из preload-кэша) с локальным леджером
// участников и применяет правила отсечки.
type UseCase struct {
	bookingRepo  BookingRepository
	tourConfigs  TourConfigProvider
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tourConfigs TourConfigProvider,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tourConfigs:  tourConfigs,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы use case (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных времен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: tour_type=%s, date=%s, party_size=%d",
		req.TourType, req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию тура
	tourCfg, err := uc.tourConfigs.Get(req.TourType)
	if err != nil {
		uc.logger.Warn("GetAvailableTimes: tour_type=%s not configured", req.TourType)
		return nil, ErrTourNotFound
	}

	// 4. Смотрим внешний сигнал в preload-кэше. Синхронно в источники не
	// ходим: календарь обязан был прогреть кэш preload'ом, а миссинг/стейл
	// означает расчет только по локальной вместимости.
	dateKey := domain.DateKeyOf(req.Date)
	cached, _ := uc.cache.GetFresh(req.TourType, dateKey)

	// 5. Пересобираем леджер участников по полному списку подтвержденных
	// бронирований тура
	filter := domain.TourBookingsFilter{
		TourType:      req.TourType,
		ConfirmedOnly: true,
	}
	bookings, err := uc.bookingRepo.GetByTourWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	ledger := domain.BuildParticipantsByDate(bookings)

	// 6. Слияние: для каждого слота проверяем вместимость и отсечку
	slots, source := candidateSlots(cached, tourCfg)
	times := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		if !hasCapacity(slot, source, tourCfg, ledger, dateKey, req.PartySize) {
			continue
		}

		hasParticipants := ledger.HasParticipants(dateKey, slot.Time)
		bookable, err := tourCfg.Cutoff.IsSlotBookable(req.Date, slot.Time, now, hasParticipants)
		if err != nil {
			// Нечитаемое время слота: отбрасываем слот, не угадываем
			uc.logger.Warn("GetAvailableTimes: dropping slot with unparsable time %q for tour_type=%s date=%s: %v",
				slot.Time, req.TourType, dateKey, err)
			continue
		}
		if !bookable {
			continue
		}

		// Порядок источника сохраняется, пересортировки нет
		times = append(times, slot.Time)
	}

	uc.logger.Info("GetAvailableTimes: %d of %d slots bookable for tour_type=%s date=%s party_size=%d (source=%s)",
		len(times), len(slots), req.TourType, dateKey, req.PartySize, source)

	return &Response{
		TourType:  req.TourType,
		Date:      req.Date,
		PartySize: req.PartySize,
		Times:     times,
		Source:    source,
	}, nil
}
