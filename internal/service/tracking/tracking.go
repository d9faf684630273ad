package tracking

import (
	"context"
	"fmt"
	"strings"

	"tracker/internal/entities"
)

type Tracking struct {
	events   EventRepository
	packages PackageRepository
}

func New(events EventRepository, packages PackageRepository) *Tracking {
	return &Tracking{
		events:   events,
		packages: packages,
	}
}

// History возвращает журнал посылки по возрастанию времени.
// Неизвестный трек-номер — ошибка, известный номер без событий — пустой список.
func (t *Tracking) History(ctx context.Context, trackingNumber string) ([]entities.TrackingEvent, error) {
	if strings.TrimSpace(trackingNumber) == "" {
		return nil, ErrInvalidTrackingNumber
	}

	pkg, err := t.packages.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("resolve tracking number: %w", err)
	}

	events, err := t.events.ListByPackageID(ctx, pkg.ID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	return events, nil
}
