package find_next_available_date

import (
	"context"
	"errors"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

var (
	// ErrTourNotFound возвращается, когда тур не сконфигурирован
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)

// Request модель запроса поиска ближайшей свободной даты
type Request struct {
	TourType domain.TourType
}

// Response модель ответа
type Response struct {
	TourType domain.TourType
	Date     time.Time
	Found    bool // false = в горизонте сканирования ничего нет, Date = сегодня
}

// UseCase use case поиска ближайшей даты с положительным сигналом доступности.
// Сканирует день за днем строго последовательно, чтобы не бомбить внешний
// источник пачкой запросов; ошибка по отдельному дню трактуется как
// "сигнала нет" и скан продолжается.
type UseCase struct {
	adapter      AvailabilityAdapter
	tourConfigs  TourConfigProvider
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	adapter AvailabilityAdapter,
	tourConfigs TourConfigProvider,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		adapter:      adapter,
		tourConfigs:  tourConfigs,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы use case (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case поиска ближайшей свободной даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextAvailableDate: tour_type=%s", req.TourType)

	if req.TourType == "" {
		return nil, ErrInvalidInput
	}

	if _, err := uc.tourConfigs.Get(req.TourType); err != nil {
		uc.logger.Warn("FindNextAvailableDate: tour_type=%s not configured", req.TourType)
		return nil, ErrTourNotFound
	}

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := 0; i <= uc.horizonDays; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := today.AddDate(0, 0, i)

		has, err := uc.adapter.HasAnySignal(ctx, req.TourType, date)
		if err != nil {
			// Отказ источника по дню = сигнала нет, идем дальше
			uc.logger.Warn("FindNextAvailableDate: skipping date=%s for tour_type=%s: %v",
				domain.DateKeyOf(date), req.TourType, err)
			continue
		}

		if has {
			uc.logger.Info("FindNextAvailableDate: tour_type=%s next available date=%s",
				req.TourType, domain.DateKeyOf(date))
			return &Response{TourType: req.TourType, Date: date, Found: true}, nil
		}
	}

	uc.logger.Warn("FindNextAvailableDate: no availability within %d days for tour_type=%s",
		uc.horizonDays, req.TourType)
	return &Response{TourType: req.TourType, Date: today, Found: false}, nil
}
