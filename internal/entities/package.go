package entities

import (
	"fmt"
	"time"
)

type Package struct {
	ID                int64
	TrackingNumber    string
	UserID            string
	Sender            PartyDetails
	Receiver          PartyDetails
	PackageType       PackageType
	Weight            float64
	Description       string
	Amount            float64
	Paid              bool
	Status            PackageStatus
	DeliveryOtp       *string
	DeliveryConfirmed bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeliveredAt       *time.Time
}

type PartyDetails struct {
	Name    string
	Phone   string
	Email   string
	Address string
	City    string
	Pincode string
}

type PackageModify struct {
	ID             *int64
	TrackingNumber *string
	UserID         *string
	Sender         *PartyDetails
	Receiver       *PartyDetails
	PackageType    *PackageType
	Weight         *float64
	Description    *string
	Amount         *float64
	Paid           *bool
	Status         *PackageStatus
}

type PackageType string

const (
	TypeDocument PackageType = "document"
	TypeParcel   PackageType = "parcel"
	TypeFragile  PackageType = "fragile"
)

const DefaultPackageType = TypeParcel

func (t PackageType) String() string {
	return string(t)
}

func IsValidPackageType(t PackageType) bool {
	switch t {
	case TypeDocument, TypeParcel, TypeFragile:
		return true
	}
	return false
}

type PackageStatus string

const (
	StatusCreated        PackageStatus = "created"
	StatusPickedUp       PackageStatus = "picked_up"
	StatusInTransit      PackageStatus = "in_transit"
	StatusOutForDelivery PackageStatus = "out_for_delivery"
	StatusDelivered      PackageStatus = "delivered"
	StatusCancelled      PackageStatus = "cancelled"
)

func (s PackageStatus) String() string {
	return string(s)
}

// AllStatuses перечисляет все статусы жизненного цикла посылки.
// Порядок соответствует прямому маршруту доставки.
var AllStatuses = []PackageStatus{
	StatusCreated,
	StatusPickedUp,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

func ParsePackageStatus(raw string) (PackageStatus, error) {
	status := PackageStatus(raw)
	for _, known := range AllStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// StatusTransitions — таблица допустимых переходов. Данные, а не код:
// движок статусов валидирует переход только по этой таблице.
// Терминальные статусы присутствуют с пустым списком исходящих рёбер.
var StatusTransitions = map[PackageStatus][]PackageStatus{
	StatusCreated:        {StatusPickedUp, StatusCancelled},
	StatusPickedUp:       {StatusInTransit, StatusCancelled},
	StatusInTransit:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

func (s PackageStatus) IsTerminal() bool {
	return len(StatusTransitions[s]) == 0
}

func (s PackageStatus) CanTransitionTo(target PackageStatus) bool {
	for _, next := range StatusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ValidateTransitions проверяет согласованность таблицы переходов со списком статусов.
// Вызывается при старте приложения: молчаливый пропуск статуса в таблице недопустим.
func ValidateTransitions() error {
	for _, status := range AllStatuses {
		targets, ok := StatusTransitions[status]
		if !ok {
			return fmt.Errorf("status %q is missing from the transition table", status)
		}
		for _, target := range targets {
			if _, err := ParsePackageStatus(target.String()); err != nil {
				return fmt.Errorf("status %q has unknown transition target: %w", status, err)
			}
		}
	}
	if len(StatusTransitions) != len(AllStatuses) {
		return fmt.Errorf("transition table has %d entries, expected %d", len(StatusTransitions), len(AllStatuses))
	}
	return nil
}
