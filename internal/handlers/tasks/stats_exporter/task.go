package stats_exporter

import (
	"context"
	"time"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type Service interface {
	DashboardStats(ctx context.Context) (*entities.DashboardStats, error)
}

// StatsExporter периодически выгружает срез по посылкам в prometheus-гейджи.
type StatsExporter struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatsExporter(log logger.Logger, service Service, interval time.Duration) *StatsExporter {
	return &StatsExporter{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatsExporter) TTL() time.Duration {
	return s.interval
}

func (s *StatsExporter) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	dashboard, err := s.service.DashboardStats(ctxWithTimeout)
	if err != nil {
		return err
	}

	PackagesTotal.Set(float64(dashboard.TotalPackages))
	for _, count := range dashboard.PackagesByStatus {
		PackagesByStatus.WithLabelValues(count.Status.String()).Set(float64(count.Count))
	}

	return nil
}

func (s *StatsExporter) Info() string {
	return "stats exporter"
}
