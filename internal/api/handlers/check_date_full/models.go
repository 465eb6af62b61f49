package check_date_full

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	checkDateFull "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/check_date_full"
)

// DateFullResponse HTTP response model
type DateFullResponse struct {
	TourType string `json:"tourType"`
	Date     string `json:"date"`
	IsFull   bool   `json:"isFull"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkDateFull.Response) *DateFullResponse {
	return &DateFullResponse{
		TourType: resp.TourType.String(),
		Date:     resp.Date.Format(domain.DateFormat),
		IsFull:   resp.IsFull,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tourType domain.TourType, dateStr string, partySize int) (*checkDateFull.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkDateFull.Request{
		TourType:  tourType,
		Date:      date,
		PartySize: partySize,
	}, nil
}
