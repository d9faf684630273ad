//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"tracker/internal/entities"
)

type EventRepository interface {
	ListByPackageID(ctx context.Context, packageID int64) ([]entities.TrackingEvent, error)
}

type PackageRepository interface {
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error)
}
