package parcel

import "time"

type PackageDB struct {
	ID                int64
	TrackingNumber    string
	UserID            string
	SenderName        string
	SenderPhone       string
	SenderEmail       string
	SenderAddress     string
	SenderCity        string
	SenderPincode     string
	ReceiverName      string
	ReceiverPhone     string
	ReceiverEmail     string
	ReceiverAddress   string
	ReceiverCity      string
	ReceiverPincode   string
	PackageType       string
	Weight            float64
	Description       string
	Amount            float64
	Paid              bool
	Status            string
	DeliveryOtp       *string
	DeliveryConfirmed bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeliveredAt       *time.Time
}

type PackageModifyDB struct {
	ID             *int64
	TrackingNumber *string
	UserID         *string
	SenderName     *string
	SenderPhone    *string
	SenderEmail    *string
	SenderAddress  *string
	SenderCity     *string
	SenderPincode  *string
	ReceiverName   *string
	ReceiverPhone  *string
	ReceiverEmail  *string
	ReceiverAddress *string
	ReceiverCity   *string
	ReceiverPincode *string
	PackageType    *string
	Weight         *float64
	Description    *string
	Amount         *float64
	Paid           *bool
	Status         *string
}
