package get_available_times

import (
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

// candidateSlots возвращает слоты для проверки и источник, которым отвечаем.
// Отсутствующая, устаревшая или fallback-запись кэша означает "внешнего
// сигнала нет": берем номинальные слоты конфигурации, и вся вместимость
// считается локально.
func candidateSlots(cached *domain.DayAvailability, tourCfg *domain.TourConfig) ([]domain.TimeSlot, domain.AvailabilitySource) {
	if cached == nil || cached.IsFallback() {
		slots := make([]domain.TimeSlot, len(tourCfg.TimeSlots))
		for i, t := range tourCfg.TimeSlots {
			slots[i] = domain.TimeSlot{Time: t}
		}
		source := domain.SourceFallback
		if cached != nil {
			source = cached.Source
		}
		return slots, source
	}
	return cached.TimeSlots, cached.Source
}

// hasCapacity проверяет вместимость слота по политике слияния:
// внешний сигнал, когда он есть у слота, авторитетен; иначе локальная
// вместимость минус уже забронированные участники.
func hasCapacity(
	slot domain.TimeSlot,
	source domain.AvailabilitySource,
	tourCfg *domain.TourConfig,
	ledger domain.ParticipantsByDate,
	dateKey string,
	partySize int,
) bool {
	if source != domain.SourceFallback && slot.HasExternalSignal() {
		return *slot.AvailableSpots >= partySize
	}
	return tourCfg.MaxParticipants-ledger.Count(dateKey, slot.Time) >= partySize
}
