package check_date_full

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не сконфигурирован
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
