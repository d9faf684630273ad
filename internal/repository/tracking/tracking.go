// Package tracking — append-only хранилище событий отслеживания.
// Для таблицы tracking_events существуют только INSERT и SELECT:
// события никогда не изменяются и не удаляются.
package tracking

import (
	"context"
	"fmt"

	"tracker/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, event entities.TrackingEvent) (*entities.TrackingEvent, error) {
	query := `
		INSERT INTO tracking_events (package_id, tracking_number, status, location, remarks, ts)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))
		RETURNING id, package_id, tracking_number, status, location, remarks, ts
	`

	var ts interface{}
	if !event.Timestamp.IsZero() {
		ts = event.Timestamp
	}

	var eventDB TrackingEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		event.PackageID,
		event.TrackingNumber,
		event.Status.String(),
		event.Location,
		event.Remarks,
		ts,
	).Scan(
		&eventDB.ID,
		&eventDB.PackageID,
		&eventDB.TrackingNumber,
		&eventDB.Status,
		&eventDB.Location,
		&eventDB.Remarks,
		&eventDB.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return ToDomain(&eventDB), nil
}

func (r *Repository) ListByPackageID(ctx context.Context, packageID int64) ([]entities.TrackingEvent, error) {
	// Сортировка по времени, при равных метках — по порядку вставки.
	query := `
		SELECT id, package_id, tracking_number, status, location, remarks, ts
		FROM tracking_events
		WHERE package_id = $1
		ORDER BY ts ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, packageID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.TrackingEvent, 0)
	for rows.Next() {
		var eventDB TrackingEventDB
		err := rows.Scan(
			&eventDB.ID,
			&eventDB.PackageID,
			&eventDB.TrackingNumber,
			&eventDB.Status,
			&eventDB.Location,
			&eventDB.Remarks,
			&eventDB.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository scan error: %w", err)
		}
		events = append(events, *ToDomain(&eventDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository rows error: %w", err)
	}

	return events, nil
}
