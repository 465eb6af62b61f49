package preload_availability

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	preloadAvailability "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/preload_availability"
)

// PreloadRequest HTTP request body
type PreloadRequest struct {
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD, включительно
}

// PreloadResponse HTTP response model
type PreloadResponse struct {
	TourType  string `json:"tourType"`
	Requested int    `json:"requested"`
	Fetched   int    `json:"fetched"`
	Skipped   int    `json:"skipped"`
	Fallbacks int    `json:"fallbacks"`
}

// ToUseCaseRequest создает запрос use case из тела запроса
func (r *PreloadRequest) ToUseCaseRequest(tourType domain.TourType) (*preloadAvailability.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &preloadAvailability.Request{
		TourType:  tourType,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *preloadAvailability.Response) *PreloadResponse {
	return &PreloadResponse{
		TourType:  resp.TourType.String(),
		Requested: resp.Requested,
		Fetched:   resp.Fetched,
		Skipped:   resp.Skipped,
		Fallbacks: resp.Fallbacks,
	}
}
