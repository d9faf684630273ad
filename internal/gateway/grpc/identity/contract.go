//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_test
package identity

import (
	"context"

	"google.golang.org/grpc"
	proto "tracker/internal/generated/proto/clients"
)

type client interface {
	GetUserById(ctx context.Context, in *proto.GetUserByIdRequest, opts ...grpc.CallOption) (*proto.GetUserByIdResponse, error)
	GetUserStats(ctx context.Context, in *proto.GetUserStatsRequest, opts ...grpc.CallOption) (*proto.GetUserStatsResponse, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
