package create_booking

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// Request модель запроса создания бронирования
type Request struct {
	UserID        int64
	TourType      domain.TourType
	Date          time.Time
	StartTime     types.TimeString
	Adults        int
	Children      int
	Infants       int
	CustomerName  string
	CustomerEmail string
	Notes         *string
}

// PartySize количество мест, которые займет бронирование
// (младенцы не занимают места)
func (r *Request) PartySize() int {
	return r.Adults + r.Children
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64
	Status    domain.BookingStatus
	TourType  domain.TourType
	Date      time.Time
	StartTime types.TimeString
	CreatedAt time.Time
}
