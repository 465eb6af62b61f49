package tours

import "errors"

var (
	// ErrTourNotConfigured возвращается, когда для тура нет секции [tours.<type>]
	ErrTourNotConfigured = errors.New("tours: tour is not configured")

	// ErrInvalidConfig возвращается при некорректной конфигурации тура
	ErrInvalidConfig = errors.New("tours: invalid tour config")
)
