package stats

import (
	"context"
	"fmt"
	"sort"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type Stats struct {
	repository Repository
	identity   IdentityGateway
	log        serviceLogger
}

func New(log serviceLogger, repository Repository, identity IdentityGateway) *Stats {
	return &Stats{
		repository: repository,
		identity:   identity,
		log:        log.With(),
	}
}

func (s *Stats) CustomerStats(ctx context.Context, userID string) (*entities.CustomerStats, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	counts, err := s.repository.CountByStatus(ctx, &userID)
	if err != nil {
		return nil, fmt.Errorf("count packages by status: %w", err)
	}

	buckets, total := rollup(counts)
	return &entities.CustomerStats{
		UserID:            userID,
		TotalPackages:     total,
		CreatedPackages:   buckets[entities.BucketCreated],
		InTransitPackages: buckets[entities.BucketInTransit],
		DeliveredPackages: buckets[entities.BucketDelivered],
		CancelledPackages: buckets[entities.BucketCancelled],
	}, nil
}

func (s *Stats) DashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	counts, err := s.repository.CountByStatus(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count packages by status: %w", err)
	}

	buckets, total := rollup(counts)
	dashboard := entities.DashboardStats{
		TotalPackages:     total,
		CreatedPackages:   buckets[entities.BucketCreated],
		InTransitPackages: buckets[entities.BucketInTransit],
		DeliveredPackages: buckets[entities.BucketDelivered],
		CancelledPackages: buckets[entities.BucketCancelled],
		PackagesByStatus:  statusBreakdown(counts),
	}

	// Счётчики пользователей — данные дашборда, а не инвариант ядра:
	// недоступность identity-сервиса не валит весь ответ.
	userStats, err := s.identity.GetUserStats(ctx)
	if err != nil {
		s.log.Warn("dashboard user counts unavailable",
			logger.NewField("error", err),
		)
		return &dashboard, nil
	}

	dashboard.TotalUsers = userStats.TotalUsers
	dashboard.TotalCustomers = userStats.TotalCustomers
	dashboard.TotalCouriers = userStats.TotalCouriers
	return &dashboard, nil
}

func rollup(counts map[entities.PackageStatus]int64) (map[entities.BucketType]int64, int64) {
	buckets := make(map[entities.BucketType]int64, len(entities.StatusBucket))
	var total int64
	for status, count := range counts {
		buckets[entities.StatusBucket[status]] += count
		total += count
	}
	return buckets, total
}

func statusBreakdown(counts map[entities.PackageStatus]int64) []entities.StatusCount {
	breakdown := make([]entities.StatusCount, 0, len(entities.AllStatuses))
	for _, status := range entities.AllStatuses {
		breakdown = append(breakdown, entities.StatusCount{
			Status: status,
			Count:  counts[status],
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})
	return breakdown
}
