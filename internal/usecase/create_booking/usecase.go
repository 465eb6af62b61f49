package create_booking

import (
	"context"
	"fmt"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// UseCase use case создания бронирования (checkout).
// Подсказка доступности в UI неавторитетна - здесь выполняется
// авторитетная проверка вместимости и отсечки, в сериализуемой транзакции
// с блокировкой бронирований даты.
type UseCase struct {
	bookingRepo  BookingRepository
	tourConfigs  TourConfigProvider
	adapter      AvailabilityAdapter
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tourConfigs TourConfigProvider,
	adapter AvailabilityAdapter,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tourConfigs:  tourConfigs,
		adapter:      adapter,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы use case (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, tour_type=%s, date=%s, time=%s, party_size=%d",
		req.UserID, req.TourType, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию тура
	tourCfg, err := uc.tourConfigs.Get(req.TourType)
	if err != nil {
		uc.logger.Warn("CreateBooking: tour_type=%s not configured", req.TourType)
		return nil, ErrTourNotFound
	}

	// 4. Время должно быть одним из слотов тура
	if !tourCfg.HasSlot(req.StartTime) {
		uc.logger.Warn("CreateBooking: time=%s is not a slot of tour_type=%s", req.StartTime, req.TourType)
		return nil, ErrInvalidSlot
	}

	// 5. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 6. Сверка с внешним сигналом до транзакции. Недоступность источника -
	// не отказ: проверка деградирует до локальной вместимости внутри
	// транзакции, как и везде в движке доступности.
	externalSpots := uc.externalSpotsFor(ctx, req)
	if externalSpots != nil && *externalSpots < req.PartySize() {
		uc.logger.Warn("CreateBooking: external signal rejects slot: tour_type=%s date=%s time=%s spots=%d party_size=%d",
			req.TourType, domain.DateKeyOf(req.Date), req.StartTime, *externalSpots, req.PartySize())
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Booking

	// 7. Локальная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Подтвержденные бронирования даты с блокировкой (FOR UPDATE)
		filter := domain.TourBookingsFilter{
			TourType:      req.TourType,
			StartDate:     &req.Date,
			EndDate:       &req.Date,
			ConfirmedOnly: true,
		}
		bookings, err := uc.bookingRepo.GetByTourWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		ledger := domain.BuildParticipantsByDate(bookings)
		dateKey := domain.DateKeyOf(req.Date)
		booked := ledger.Count(dateKey, req.StartTime)

		// 7.2. Локальная вместимость
		if tourCfg.MaxParticipants-booked < req.PartySize() {
			uc.logger.Warn("CreateBooking: slot full: tour_type=%s date=%s time=%s booked=%d party_size=%d",
				req.TourType, dateKey, req.StartTime, booked, req.PartySize())
			return ErrSlotNotAvailable
		}

		// 7.3. Отсечка (с коротким окном, если в слоте уже есть участники)
		bookable, err := tourCfg.Cutoff.IsSlotBookable(req.Date, req.StartTime, now, booked > 0)
		if err != nil {
			uc.logger.Error("CreateBooking: unparsable slot time %q: %v", req.StartTime, err)
			return ErrInvalidSlot
		}
		if !bookable {
			uc.logger.Warn("CreateBooking: cutoff passed: tour_type=%s date=%s time=%s",
				req.TourType, dateKey, req.StartTime)
			return ErrCutoffPassed
		}

		// 7.4. Создаем бронирование; подтверждение придет от платежного webhook
		booking := &domain.Booking{
			UserID:        req.UserID,
			TourType:      req.TourType,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			Adults:        req.Adults,
			Children:      req.Children,
			Infants:       req.Infants,
			Status:        domain.StatusPendingPayment,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Notes:         req.Notes,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for user=%d, tour_type=%s date=%s time=%s",
		result.ID, req.UserID, req.TourType, domain.DateKeyOf(req.Date), req.StartTime)

	return &Response{
		BookingID: result.ID,
		Status:    result.Status,
		TourType:  result.TourType,
		Date:      result.BookingDate,
		StartTime: result.StartTime,
		CreatedAt: result.CreatedAt,
	}, nil
}

// externalSpotsFor возвращает остаток мест по внешнему сигналу для слота
// запроса, либо nil когда сигнала нет (тур без выгрузки, слот не в ответе,
// источник недоступен)
func (uc *UseCase) externalSpotsFor(ctx context.Context, req *Request) *int {
	day, err := uc.adapter.FetchDay(ctx, req.TourType, req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: external check degraded to local-only for tour_type=%s date=%s: %v",
			req.TourType, domain.DateKeyOf(req.Date), err)
		return nil
	}

	for _, slot := range day.TimeSlots {
		if slot.Time == req.StartTime {
			return slot.AvailableSpots
		}
	}
	return nil
}
