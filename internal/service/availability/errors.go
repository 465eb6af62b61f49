package availability

import "errors"

var (
	// ErrFetchFailed возвращается, когда источник доступности не ответил.
	// Вызывающая сторона явно решает, деградировать ли до fallback-записи
	// с номинальными слотами (локальный расчет вместимости).
	ErrFetchFailed = errors.New("availability: failed to fetch day availability")

	// ErrInternal возвращается при внутренних ошибках адаптера
	ErrInternal = errors.New("availability: internal error")
)
