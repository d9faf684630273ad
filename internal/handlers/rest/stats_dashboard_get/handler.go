package stats_dashboard_get

import (
	"encoding/json"
	"net/http"

	"tracker/internal/handlers/rest/dto"
	"tracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.DashboardStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	byStatus := make([]dto.StatusCount, 0, len(dashboard.PackagesByStatus))
	for _, count := range dashboard.PackagesByStatus {
		byStatus = append(byStatus, dto.StatusCount{
			Status: count.Status.String(),
			Count:  count.Count,
		})
	}

	response := dto.DashboardStats{
		TotalPackages:     dashboard.TotalPackages,
		CreatedPackages:   dashboard.CreatedPackages,
		InTransitPackages: dashboard.InTransitPackages,
		DeliveredPackages: dashboard.DeliveredPackages,
		CancelledPackages: dashboard.CancelledPackages,
		TotalUsers:        dashboard.TotalUsers,
		TotalCustomers:    dashboard.TotalCustomers,
		TotalCouriers:     dashboard.TotalCouriers,
		PackagesByStatus:  byStatus,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
