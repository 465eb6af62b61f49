package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	bookingRepo "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/infra/storage/booking"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	tourConfigs  TourConfigProvider
	adminUserIDs []int64
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	tourConfigs TourConfigProvider,
	adminUserIDs []int64,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		tourConfigs:  tourConfigs,
		adminUserIDs: adminUserIDs,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы сервиса (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование; администраторы бэк-офиса - любое.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !s.isAdmin(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.RequesterID != req.UserID && !s.isAdmin(req.RequesterID) {
		s.logger.Warn("GetUserBookings: access denied for user=%d to bookings of user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetTourBookings получает бронирования тура с фильтрацией по периоду и статусу
// Доступно только администраторам бэк-офиса
func (s *Service) GetTourBookings(ctx context.Context, req *models.GetTourBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTourBookings: fetching bookings for tour_type=%s, user=%d", req.TourType, req.UserID)

	if !s.isAdmin(req.UserID) {
		s.logger.Warn("GetTourBookings: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	if _, err := s.tourConfigs.Get(req.TourType); err != nil {
		s.logger.Warn("GetTourBookings: tour_type=%s not configured", req.TourType)
		return nil, ErrTourNotFound
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTourBookings: invalid filter for tour_type=%s: %v", req.TourType, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByTourWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTourBookings: repository error for tour_type=%s: %v", req.TourType, err)
		return nil, fmt.Errorf("%w: GetTourBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTourBookings: successfully fetched %d bookings for tour_type=%s", len(bookings), req.TourType)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Пользователь отменяет только своё бронирование и только пока не закрылось
// окно отмены тура; администратор бэк-офиса может отменить любое бронирование
// без ограничения по времени.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	isAdmin := s.isAdmin(req.UserID)
	if booking.UserID != req.UserID && !isAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Для самостоятельной отмены действует окно отмены тура
	if !isAdmin {
		if err := s.checkCancellationWindow(booking); err != nil {
			return err
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkCancellationWindow проверяет, что до начала тура осталось не меньше
// часов отсечки
func (s *Service) checkCancellationWindow(booking *domain.Booking) error {
	tourCfg, err := s.tourConfigs.Get(booking.TourType)
	if err != nil {
		s.logger.Error("checkCancellationWindow: tour_type=%s not configured for booking id=%d",
			booking.TourType, booking.ID)
		return fmt.Errorf("%w: checkCancellationWindow: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	bookable, err := tourCfg.Cutoff.IsSlotBookable(booking.BookingDate, booking.StartTime, now, false)
	if err != nil {
		// Нечитаемое время слота: закрываем окно, не угадываем
		s.logger.Error("checkCancellationWindow: unparsable start time %q for booking id=%d: %v",
			booking.StartTime, booking.ID, err)
		return ErrCancellationWindowClosed
	}
	if !bookable {
		s.logger.Warn("Cancel: cancellation window closed for booking id=%d (date=%s time=%s)",
			booking.ID, domain.DateKeyOf(booking.BookingDate), booking.StartTime)
		return ErrCancellationWindowClosed
	}

	return nil
}

// isAdmin проверяет, входит ли пользователь в список администраторов бэк-офиса
func (s *Service) isAdmin(userID int64) bool {
	for _, adminID := range s.adminUserIDs {
		if adminID == userID {
			return true
		}
	}
	return false
}
