package bokun

import "errors"

var (
	// ErrTourNotListed возвращается, когда внешний источник не знает такой тур
	ErrTourNotListed = errors.New("bokun client: tour is not listed in external source")

	// ErrUnavailable возвращается при недоступности внешнего источника
	// (сетевые ошибки, таймауты, 5xx). Вызывающая сторона сама решает,
	// деградировать ли до локального расчета вместимости.
	ErrUnavailable = errors.New("bokun client: external source unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе внешнего источника
	ErrInvalidResponse = errors.New("bokun client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bokun client: internal error")
)
