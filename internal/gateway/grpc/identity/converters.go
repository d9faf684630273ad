package identity

import (
	"tracker/internal/entities"
	proto "tracker/internal/generated/proto/clients"
)

func toDomain(protoUser *proto.User) *entities.User {
	if protoUser == nil {
		return nil
	}

	return &entities.User{
		ID:    protoUser.Id,
		Email: protoUser.Email,
		Name:  protoUser.Name,
		Role:  protoUser.Role,
	}
}

func toStatsDomain(resp *proto.GetUserStatsResponse) *entities.UserStats {
	if resp == nil {
		return &entities.UserStats{}
	}

	return &entities.UserStats{
		TotalUsers:     resp.TotalUsers,
		TotalCustomers: resp.TotalCustomers,
		TotalCouriers:  resp.TotalCouriers,
	}
}
