package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var packageCreateDTO dto.PackageCreate
	err := json.NewDecoder(r.Body).Decode(&packageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageType := entities.PackageType(packageCreateDTO.PackageType)
	sender := toParty(packageCreateDTO.Sender)
	receiver := toParty(packageCreateDTO.Receiver)
	packageModifyEntity := entities.PackageModify{
		UserID:      &packageCreateDTO.UserID,
		Sender:      &sender,
		Receiver:    &receiver,
		PackageType: &packageType,
		Weight:      &packageCreateDTO.Weight,
		Description: &packageCreateDTO.Description,
		Amount:      &packageCreateDTO.Amount,
	}

	created, err := h.service.CreatePackage(r.Context(), packageModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrMissingRequiredFields),
			errors.Is(err, packages.ErrInvalidPackageType),
			errors.Is(err, packages.ErrInvalidWeight),
			errors.Is(err, packages.ErrInvalidAmount),
			errors.Is(err, packages.ErrInvalidParty):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrTrackingNumberConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PackageCreateResponse{
		ID:             created.ID,
		TrackingNumber: created.TrackingNumber,
		Status:         created.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toParty(p dto.PartyDetails) entities.PartyDetails {
	return entities.PartyDetails{
		Name:    p.Name,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
		City:    p.City,
		Pincode: p.Pincode,
	}
}
