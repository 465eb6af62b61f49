package check_date_full

import (
	"context"

	checkDateFull "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/check_date_full"
)

type CheckDateFullUseCase interface {
	Execute(ctx context.Context, req *checkDateFull.Request) (*checkDateFull.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
