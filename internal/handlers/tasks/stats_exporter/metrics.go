package stats_exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PackagesByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tracker_packages_by_status",
		Help: "Current number of packages per lifecycle status",
	}, []string{"status"})

	PackagesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_packages_total",
		Help: "Current total number of packages",
	})
)
