package tours

import (
	"fmt"
	"sort"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/config"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/types"
)

// Provider отдает статическую конфигурацию туров (вместимость, номинальные
// слоты, правила отсечки). Конфигурация разбирается один раз на старте и
// дальше не мутируется, поэтому Provider безопасен для конкурентного чтения.
type Provider struct {
	configs map[domain.TourType]*domain.TourConfig
}

// NewProvider разбирает секции [tours.<type>] из config.toml в доменную
// конфигурацию. Нечитаемый тип тура, слот или время отсечки - ошибка старта,
// а не тихий пропуск.
func NewProvider(raw map[string]config.TourConfig) (*Provider, error) {
	configs := make(map[domain.TourType]*domain.TourConfig, len(raw))

	for name, tc := range raw {
		tourType, err := domain.ParseTourType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: section tours.%s: %v", ErrInvalidConfig, name, err)
		}

		slots := make([]types.TimeString, 0, len(tc.TimeSlots))
		for _, s := range tc.TimeSlots {
			slot, err := domain.ParseSlotTime(s)
			if err != nil {
				return nil, fmt.Errorf("%w: tours.%s time_slots: %v", ErrInvalidConfig, name, err)
			}
			slots = append(slots, slot)
		}

		var nextDayCutoff types.TimeString
		if tc.NextDayCutoffTime != "" {
			nextDayCutoff, err = domain.ParseSlotTime(tc.NextDayCutoffTime)
			if err != nil {
				return nil, fmt.Errorf("%w: tours.%s next_day_cutoff_time: %v", ErrInvalidConfig, name, err)
			}
		}

		configs[tourType] = &domain.TourConfig{
			Type:            tourType,
			MaxParticipants: tc.MaxParticipants,
			TimeSlots:       slots,
			Cutoff: domain.CutoffPolicy{
				Hours:                tc.CancellationCutoffHours,
				HoursWithParticipant: tc.CancellationCutoffHoursWithParticipant,
				NextDayCutoffTime:    nextDayCutoff,
			},
		}
	}

	return &Provider{configs: configs}, nil
}

// Get возвращает конфигурацию тура
func (p *Provider) Get(tourType domain.TourType) (*domain.TourConfig, error) {
	cfg, ok := p.configs[tourType]
	if !ok {
		return nil, fmt.Errorf("%w: tour_type=%s", ErrTourNotConfigured, tourType)
	}
	return cfg, nil
}

// All возвращает конфигурации всех туров в стабильном порядке
func (p *Provider) All() []*domain.TourConfig {
	all := make([]*domain.TourConfig, 0, len(p.configs))
	for _, cfg := range p.configs {
		all = append(all, cfg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Type < all[j].Type })
	return all
}
