package preload_availability

import (
	"context"

	preloadAvailability "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/preload_availability"
)

type PreloadAvailabilityUseCase interface {
	Execute(ctx context.Context, req *preloadAvailability.Request) (*preloadAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
