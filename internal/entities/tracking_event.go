package entities

import "time"

// TrackingEvent — запись журнала отслеживания. Создаётся ровно один раз
// на каждый переход статуса (включая создание посылки), никогда не
// изменяется и не удаляется.
type TrackingEvent struct {
	ID             int64
	PackageID      int64
	TrackingNumber string
	Status         PackageStatus
	Location       string
	Remarks        string
	Timestamp      time.Time
}
