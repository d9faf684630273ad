package parcel

import "tracker/internal/entities"

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}
	return &entities.Package{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		UserID:         p.UserID,
		Sender: entities.PartyDetails{
			Name:    p.SenderName,
			Phone:   p.SenderPhone,
			Email:   p.SenderEmail,
			Address: p.SenderAddress,
			City:    p.SenderCity,
			Pincode: p.SenderPincode,
		},
		Receiver: entities.PartyDetails{
			Name:    p.ReceiverName,
			Phone:   p.ReceiverPhone,
			Email:   p.ReceiverEmail,
			Address: p.ReceiverAddress,
			City:    p.ReceiverCity,
			Pincode: p.ReceiverPincode,
		},
		PackageType:       entities.PackageType(p.PackageType),
		Weight:            p.Weight,
		Description:       p.Description,
		Amount:            p.Amount,
		Paid:              p.Paid,
		Status:            entities.PackageStatus(p.Status),
		DeliveryOtp:       p.DeliveryOtp,
		DeliveryConfirmed: p.DeliveryConfirmed,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		DeliveredAt:       p.DeliveredAt,
	}
}

func FromDomainModify(p *entities.PackageModify) *PackageModifyDB {
	if p == nil {
		return nil
	}
	packageModifyDB := &PackageModifyDB{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		UserID:         p.UserID,
		Paid:           p.Paid,
	}

	if p.Sender != nil {
		packageModifyDB.SenderName = &p.Sender.Name
		packageModifyDB.SenderPhone = &p.Sender.Phone
		packageModifyDB.SenderEmail = &p.Sender.Email
		packageModifyDB.SenderAddress = &p.Sender.Address
		packageModifyDB.SenderCity = &p.Sender.City
		packageModifyDB.SenderPincode = &p.Sender.Pincode
	}
	if p.Receiver != nil {
		packageModifyDB.ReceiverName = &p.Receiver.Name
		packageModifyDB.ReceiverPhone = &p.Receiver.Phone
		packageModifyDB.ReceiverEmail = &p.Receiver.Email
		packageModifyDB.ReceiverAddress = &p.Receiver.Address
		packageModifyDB.ReceiverCity = &p.Receiver.City
		packageModifyDB.ReceiverPincode = &p.Receiver.Pincode
	}
	if p.PackageType != nil {
		packageType := p.PackageType.String()
		packageModifyDB.PackageType = &packageType
	}
	if p.Weight != nil {
		packageModifyDB.Weight = p.Weight
	}
	if p.Description != nil {
		packageModifyDB.Description = p.Description
	}
	if p.Amount != nil {
		packageModifyDB.Amount = p.Amount
	}
	if p.Status != nil {
		status := p.Status.String()
		packageModifyDB.Status = &status
	}

	return packageModifyDB
}
