package dto

import (
	"time"

	"tracker/internal/entities"
)

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type PartyDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type PackageCreate struct {
	UserID      string       `json:"user_id"`
	Sender      PartyDetails `json:"sender"`
	Receiver    PartyDetails `json:"receiver"`
	PackageType string       `json:"package_type"`
	Weight      float64      `json:"weight"`
	Description string       `json:"description"`
	Amount      float64      `json:"amount"`
}

type PackageCreateResponse struct {
	ID             int64  `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

// Package — внешнее представление посылки. Код подтверждения доставки
// в ответы не попадает никогда.
type Package struct {
	ID             int64        `json:"id"`
	TrackingNumber string       `json:"tracking_number"`
	UserID         string       `json:"user_id"`
	Sender         PartyDetails `json:"sender"`
	Receiver       PartyDetails `json:"receiver"`
	PackageType    string       `json:"package_type"`
	Weight         float64      `json:"weight"`
	Description    string       `json:"description"`
	Amount         float64      `json:"amount"`
	Paid           bool         `json:"paid"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	DeliveredAt    *time.Time   `json:"delivered_at,omitempty"`
}

type StatusUpdate struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Remarks  string `json:"remarks"`
}

type ConfirmDelivery struct {
	Code string `json:"code"`
}

type TrackingEvent struct {
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Location       string    `json:"location"`
	Remarks        string    `json:"remarks"`
	Timestamp      time.Time `json:"timestamp"`
}

type CustomerStats struct {
	UserID            string `json:"user_id"`
	TotalPackages     int64  `json:"total_packages"`
	CreatedPackages   int64  `json:"created_packages"`
	InTransitPackages int64  `json:"in_transit_packages"`
	DeliveredPackages int64  `json:"delivered_packages"`
	CancelledPackages int64  `json:"cancelled_packages"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardStats struct {
	TotalPackages     int64         `json:"total_packages"`
	CreatedPackages   int64         `json:"created_packages"`
	InTransitPackages int64         `json:"in_transit_packages"`
	DeliveredPackages int64         `json:"delivered_packages"`
	CancelledPackages int64         `json:"cancelled_packages"`
	TotalUsers        int64         `json:"total_users"`
	TotalCustomers    int64         `json:"total_customers"`
	TotalCouriers     int64         `json:"total_couriers"`
	PackagesByStatus  []StatusCount `json:"packages_by_status"`
}

func FromPackage(p *entities.Package) Package {
	return Package{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		UserID:         p.UserID,
		Sender:         fromParty(p.Sender),
		Receiver:       fromParty(p.Receiver),
		PackageType:    p.PackageType.String(),
		Weight:         p.Weight,
		Description:    p.Description,
		Amount:         p.Amount,
		Paid:           p.Paid,
		Status:         p.Status.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		DeliveredAt:    p.DeliveredAt,
	}
}

func fromParty(p entities.PartyDetails) PartyDetails {
	return PartyDetails{
		Name:    p.Name,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
		City:    p.City,
		Pincode: p.Pincode,
	}
}
