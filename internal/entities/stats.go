package entities

// StatusBucket — фиксированная таблица свёртки статусов в категории статистики.
// PICKED_UP, IN_TRANSIT и OUT_FOR_DELIVERY считаются "в пути".
var StatusBucket = map[PackageStatus]BucketType{
	StatusCreated:        BucketCreated,
	StatusPickedUp:       BucketInTransit,
	StatusInTransit:      BucketInTransit,
	StatusOutForDelivery: BucketInTransit,
	StatusDelivered:      BucketDelivered,
	StatusCancelled:      BucketCancelled,
}

type BucketType string

const (
	BucketCreated   BucketType = "created"
	BucketInTransit BucketType = "in_transit"
	BucketDelivered BucketType = "delivered"
	BucketCancelled BucketType = "cancelled"
)

// CustomerStats — производный снимок по посылкам одного пользователя.
// Не хранится, вычисляется по запросу одним сканом.
type CustomerStats struct {
	UserID            string
	TotalPackages     int64
	CreatedPackages   int64
	InTransitPackages int64
	DeliveredPackages int64
	CancelledPackages int64
}

type DashboardStats struct {
	TotalPackages     int64
	CreatedPackages   int64
	InTransitPackages int64
	DeliveredPackages int64
	CancelledPackages int64
	TotalUsers        int64
	TotalCustomers    int64
	TotalCouriers     int64
	PackagesByStatus  []StatusCount
}

// StatusCount — количество посылок в конкретном статусе без свёртки.
type StatusCount struct {
	Status PackageStatus
	Count  int64
}

// UserStats — счётчики пользователей по ролям из identity-сервиса.
type UserStats struct {
	TotalUsers     int64
	TotalCustomers int64
	TotalCouriers  int64
}

// User — представление пользователя из identity-сервиса,
// используется для адресации уведомлений.
type User struct {
	ID    string
	Email string
	Name  string
	Role  string
}
