package tracking

import "time"

type TrackingEventDB struct {
	ID             int64
	PackageID      int64
	TrackingNumber string
	Status         string
	Location       string
	Remarks        string
	Timestamp      time.Time
}
