package stats_customer_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/handlers/rest/dto"
	"tracker/internal/service/stats"
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
	userID := mux.Vars(r)["userID"]

	customerStats, err := h.service.CustomerStats(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CustomerStats{
		UserID:            customerStats.UserID,
		TotalPackages:     customerStats.TotalPackages,
		CreatedPackages:   customerStats.CreatedPackages,
		InTransitPackages: customerStats.InTransitPackages,
		DeliveredPackages: customerStats.DeliveredPackages,
		CancelledPackages: customerStats.CancelledPackages,
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
