package get_available_times

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	getAvailableTimes "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	TourType  string   `json:"tourType"`
	Date      string   `json:"date"`
	PartySize int      `json:"partySize"`
	Times     []string `json:"times"`
	Source    string   `json:"source"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}

	return &AvailableTimesResponse{
		TourType:  resp.TourType.String(),
		Date:      resp.Date.Format(domain.DateFormat),
		PartySize: resp.PartySize,
		Times:     times,
		Source:    string(resp.Source),
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tourType domain.TourType, dateStr string, partySize int) (*getAvailableTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableTimes.Request{
		TourType:  tourType,
		Date:      date,
		PartySize: partySize,
	}, nil
}
