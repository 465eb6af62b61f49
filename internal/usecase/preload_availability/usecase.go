package preload_availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// Request модель запроса прогрева кэша для видимого диапазона календаря
type Request struct {
	TourType  domain.TourType
	StartDate time.Time
	EndDate   time.Time // включительно
}

// Response итог прогрева
type Response struct {
	TourType  domain.TourType
	Requested int // дат в диапазоне
	Fetched   int // загружено из источников
	Skipped   int // пропущено как свежие (младше TTL)
	Fallbacks int // дат, закрытых fallback-записью после ошибки источника
}

// UseCase use case прогрева preload-кэша.
// Все даты диапазона запрашиваются параллельно, по горутине на дату;
// результат сливается в кэш одним куском после завершения всех запросов.
// Ошибка по отдельной дате изолирована: дата получает fallback-запись с
// номинальными слотами и не валит остальной прогрев. Отмены запущенных
// запросов нет - устаревшие ответы вытесняются проверкой свежести при чтении.
type UseCase struct {
	adapter      AvailabilityAdapter
	cache        AvailabilityCache
	tourConfigs  TourConfigProvider
	maxRangeDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	adapter AvailabilityAdapter,
	cache AvailabilityCache,
	tourConfigs TourConfigProvider,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		adapter:      adapter,
		cache:        cache,
		tourConfigs:  tourConfigs,
		maxRangeDays: maxRangeDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы use case (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет прогрев кэша для диапазона дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreloadAvailability: tour_type=%s, range=%s..%s",
		req.TourType, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация диапазона
	dates, err := uc.expandRange(req)
	if err != nil {
		uc.logger.Warn("PreloadAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Конфигурация тура (номинальные слоты нужны для fallback-записей)
	tourCfg, err := uc.tourConfigs.Get(req.TourType)
	if err != nil {
		uc.logger.Warn("PreloadAvailability: tour_type=%s not configured", req.TourType)
		return nil, ErrTourNotFound
	}

	// 3. Отбрасываем даты со свежими записями - повторный прогрев того же
	// диапазона в пределах TTL не порождает новых запросов к источникам
	toFetch := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		if uc.cache.IsStale(req.TourType, domain.DateKeyOf(date)) {
			toFetch = append(toFetch, date)
		}
	}
	skipped := len(dates) - len(toFetch)

	// 4. Параллельная загрузка, по горутине на дату; ошибки изолированы
	// по-датно и превращаются в fallback-записи
	results := make([]*domain.DayAvailability, len(toFetch))
	fallbacks := 0

	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, date := range toFetch {
		wg.Add(1)
		go func(i int, date time.Time) {
			defer wg.Done()

			day, err := uc.adapter.FetchDay(ctx, req.TourType, date)
			if err != nil {
				uc.logger.Warn("PreloadAvailability: date=%s degraded to fallback for tour_type=%s: %v",
					domain.DateKeyOf(date), req.TourType, err)
				day = domain.NewFallbackDay(domain.DateKeyOf(date), tourCfg.TimeSlots, uc.timeProvider.Now())
				mu.Lock()
				fallbacks++
				mu.Unlock()
			}
			results[i] = day
		}(i, date)
	}
	wg.Wait()

	// 5. Сливаем результат в кэш одним куском
	uc.cache.SetAll(req.TourType, results)

	uc.logger.Info("PreloadAvailability: tour_type=%s requested=%d fetched=%d skipped=%d fallbacks=%d",
		req.TourType, len(dates), len(toFetch), skipped, fallbacks)

	return &Response{
		TourType:  req.TourType,
		Requested: len(dates),
		Fetched:   len(toFetch),
		Skipped:   skipped,
		Fallbacks: fallbacks,
	}, nil
}

// expandRange валидирует диапазон и разворачивает его в список дат
func (uc *UseCase) expandRange(req *Request) ([]time.Time, error) {
	if req.TourType == "" {
		return nil, fmt.Errorf("%w: tour type is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > uc.maxRangeDays {
		return nil, fmt.Errorf("%w: %d days exceeds limit of %d", ErrRangeTooWide, days, uc.maxRangeDays)
	}

	dates := make([]time.Time, 0, days)
	for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}
