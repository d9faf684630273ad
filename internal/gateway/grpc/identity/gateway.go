package identity

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"tracker/internal/entities"
	proto "tracker/internal/generated/proto/clients"
	retrierconfig "tracker/pkg/retrier"
	"tracker/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "identity-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type IdentityGateway struct {
	client  client
	retrier retrier
}

func New(client client) *IdentityGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &IdentityGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *IdentityGateway) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	req := &proto.GetUserByIdRequest{
		Id: userID,
	}

	var resp *proto.GetUserByIdResponse

	err := g.executeWithMetrics(ctx, "GetUserById", func(ctx context.Context) error {
		var err error
		resp, err = g.client.GetUserById(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway identity, get user: %s: %w", userID, err)
	}

	if resp.User == nil {
		return nil, fmt.Errorf("user not found: %s", userID)
	}

	return toDomain(resp.User), nil
}

func (g *IdentityGateway) GetUserStats(ctx context.Context) (*entities.UserStats, error) {
	var resp *proto.GetUserStatsResponse

	err := g.executeWithMetrics(ctx, "GetUserStats", func(ctx context.Context) error {
		var err error
		resp, err = g.client.GetUserStats(ctx, &proto.GetUserStatsRequest{})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway identity, get user stats: %w", err)
	}

	return toStatsDomain(resp), nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *IdentityGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
