package bokun

import "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"

// availabilityItem один слот из ответа внешнего источника
type availabilityItem struct {
	StartTime         string `json:"startTime"`         // "HH:MM"
	AvailabilityCount int    `json:"availabilityCount"` // остаток мест
	SoldOut           bool   `json:"soldOut"`
}

// availabilityResponse ответ на запрос слотов на дату
type availabilityResponse struct {
	Date  string             `json:"date"`
	Items []availabilityItem `json:"availabilities"`
}

// ErrorResponse модель ошибки внешнего источника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// activitySlugs отображение канонического типа тура в идентификатор
// activity внешнего источника. Туры с локальной таблицей слотов
// (domain.TourType.UsesLocalSlotTable) здесь отсутствуют намеренно.
var activitySlugs = map[domain.TourType]string{
	domain.TourNight:   "kyoto-night-walking-tour",
	domain.TourMorning: "kyoto-morning-walking-tour",
	domain.TourGion:    "gion-early-morning-walking-tour",
	domain.TourMusic:   "kyoto-live-music-tour",
}
