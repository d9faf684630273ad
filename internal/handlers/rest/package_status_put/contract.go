//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_status_put_test
package package_status_put

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateStatus(
		ctx context.Context,
		trackingNumber string,
		newStatus entities.PackageStatus,
		location, remarks string,
	) (*entities.Package, error)
}
