package check_date_full

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// Request модель запроса проверки заполненности даты
type Request struct {
	TourType  domain.TourType
	Date      time.Time
	PartySize int
}

// Response модель ответа
type Response struct {
	TourType domain.TourType
	Date     time.Time
	IsFull   bool
}
