//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_test
package packages

import (
	"context"
	"time"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error)
	GetByUserID(ctx context.Context, userID string) ([]entities.Package, error)

	UpdateStatusWhereCurrent(
		ctx context.Context,
		trackingNumber string,
		current, next entities.PackageStatus,
		deliveredAt *time.Time,
	) (*entities.Package, error)

	SetPaid(ctx context.Context, trackingNumber string) error
}

type Ledger interface {
	Append(ctx context.Context, event entities.TrackingEvent) (*entities.TrackingEvent, error)
}

type ConfirmationService interface {
	IssueCode(ctx context.Context, trackingNumber string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
