package get_tour_config

import (
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// TourConfigResponse HTTP response model
type TourConfigResponse struct {
	TourType           string   `json:"tourType"`
	MaxParticipants    int      `json:"maxParticipants"`
	TimeSlots          []string `json:"timeSlots"`
	CutoffHours        int      `json:"cutoffHours"`
	CutoffHoursBooked  int      `json:"cutoffHoursBooked"`
	NextDayCutoffTime  string   `json:"nextDayCutoffTime,omitempty"`
	UsesLocalSlotTable bool     `json:"usesLocalSlotTable"`
}

// FromDomainConfig конвертирует конфигурацию тура в HTTP response
func FromDomainConfig(cfg *domain.TourConfig) *TourConfigResponse {
	slots := make([]string, len(cfg.TimeSlots))
	for i, s := range cfg.TimeSlots {
		slots[i] = s.String()
	}

	return &TourConfigResponse{
		TourType:           cfg.Type.String(),
		MaxParticipants:    cfg.MaxParticipants,
		TimeSlots:          slots,
		CutoffHours:        cfg.Cutoff.Hours,
		CutoffHoursBooked:  cfg.Cutoff.HoursWithParticipant,
		NextDayCutoffTime:  cfg.Cutoff.NextDayCutoffTime.String(),
		UsesLocalSlotTable: cfg.Type.UsesLocalSlotTable(),
	}
}
