//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type Repository interface {
	// CountByStatus возвращает количество посылок в каждом статусе одним
	// сканом. userID == nil — глобальный срез.
	CountByStatus(ctx context.Context, userID *string) (map[entities.PackageStatus]int64, error)
}

type IdentityGateway interface {
	GetUserStats(ctx context.Context) (*entities.UserStats, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
