package tracking

import "tracker/internal/entities"

func ToDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}
	return &entities.TrackingEvent{
		ID:             e.ID,
		PackageID:      e.PackageID,
		TrackingNumber: e.TrackingNumber,
		Status:         entities.PackageStatus(e.Status),
		Location:       e.Location,
		Remarks:        e.Remarks,
		Timestamp:      e.Timestamp,
	}
}
