package preload_availability

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не сконфигурирован
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooWide возвращается, когда запрошенный диапазон превышает лимит
	ErrRangeTooWide = errors.New("preload range is too wide")
)
