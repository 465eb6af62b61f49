package create_booking

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не сконфигурирован
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidSlot возвращается, когда время не входит в слоты тура
	ErrInvalidSlot = errors.New("time is not a valid slot for this tour")

	// ErrSlotNotAvailable возвращается, когда в слоте не хватает мест
	ErrSlotNotAvailable = errors.New("slot has not enough spots")

	// ErrCutoffPassed возвращается, когда окно бронирования слота закрыто
	ErrCutoffPassed = errors.New("booking cutoff has passed for this slot")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
