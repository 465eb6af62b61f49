package get_available_times

import (
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// Request модель запроса доступных времен
type Request struct {
	TourType  domain.TourType
	Date      time.Time // Дата без времени
	PartySize int       // Запрошенное количество мест (взрослые + дети)
}

// Response модель ответа со списком доступных времен.
// Times сохраняет порядок источника (или конфигурации) - пересортировки нет.
type Response struct {
	TourType  domain.TourType
	Date      time.Time
	PartySize int
	Times     []types.TimeString
	Source    domain.AvailabilitySource // Источник сигнала, которым ответили
}
