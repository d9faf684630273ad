package packages

import (
	"strings"

	"tracker/internal/entities"
)

func isValidTrackingNumber(trackingNumber string) bool {
	return strings.TrimSpace(trackingNumber) != ""
}

func isValidUserID(userID string) bool {
	return strings.TrimSpace(userID) != ""
}

func isValidParty(party entities.PartyDetails) bool {
	return strings.TrimSpace(party.Name) != "" &&
		strings.TrimSpace(party.Phone) != "" &&
		strings.TrimSpace(party.Address) != ""
}
