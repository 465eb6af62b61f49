package next_available_date

import (
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	findNextAvailableDate "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/find_next_available_date"
)

// NextAvailableDateResponse HTTP response model.
// При found=false date указывает на сегодня - клиенту есть откуда начать
// собственный календарь.
type NextAvailableDateResponse struct {
	TourType string `json:"tourType"`
	Date     string `json:"date"`
	Found    bool   `json:"found"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findNextAvailableDate.Response) *NextAvailableDateResponse {
	return &NextAvailableDateResponse{
		TourType: resp.TourType.String(),
		Date:     resp.Date.Format(domain.DateFormat),
		Found:    resp.Found,
	}
}
