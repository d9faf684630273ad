//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=confirmation_test
package confirmation

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type Repository interface {
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error)
	SetDeliveryOtp(ctx context.Context, trackingNumber, code string) error

	// ConsumeDeliveryOtp атомарно сверяет и гасит код одним условным UPDATE.
	// Несовпадение, отсутствие и уже погашенный код неразличимы для вызывающего.
	ConsumeDeliveryOtp(ctx context.Context, trackingNumber, code string) error
}

type IdentityGateway interface {
	GetUserByID(ctx context.Context, userID string) (*entities.User, error)
}

type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
