//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_confirmed_test
package payment_confirmed

import (
	"context"

	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkPaid(ctx context.Context, trackingNumber string) error
}
