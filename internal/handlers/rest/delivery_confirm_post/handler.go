package delivery_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/handlers/rest/dto"
	"tracker/internal/service/confirmation"
	"tracker/internal/service/packages"
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

	var confirmDeliveryDTO dto.ConfirmDelivery
	err := json.NewDecoder(r.Body).Decode(&confirmDeliveryDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ConfirmCode(r.Context(), trackingNumber, confirmDeliveryDTO.Code)
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrInvalidCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, confirmation.ErrAlreadyDelivered):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
