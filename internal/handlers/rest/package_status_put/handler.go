package package_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/entities"
	"tracker/internal/handlers/rest/dto"
	"tracker/internal/service/packages"
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
	trackingNumber := mux.Vars(r)["trackingNumber"]

	var statusUpdateDTO dto.StatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateStatus(
		r.Context(),
		trackingNumber,
		entities.PackageStatus(statusUpdateDTO.Status),
		statusUpdateDTO.Location,
		statusUpdateDTO.Remarks,
	)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrInvalidTrackingNumber),
			errors.Is(err, entities.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, packages.ErrInvalidTransition),
			errors.Is(err, packages.ErrTerminalState),
			errors.Is(err, packages.ErrConcurrentModification):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, packages.ErrDeliveryNotConfirmed):
			w.WriteHeader(http.StatusPreconditionFailed)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromPackage(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
