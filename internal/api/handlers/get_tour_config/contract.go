package get_tour_config

import (
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
)

type TourConfigProvider interface {
	Get(tourType domain.TourType) (*domain.TourConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
