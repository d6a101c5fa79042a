package v1

import (
	"github.com/LongVariable/Ziskup/internal/models"
)

// EntryEditable represents all user configurable parameters. Fields that
// are not set keep their current value.
type EntryEditable struct {
	Name   *string `json:"name" example:"Najem"`            // Name of the entry
	Note   *string `json:"note" example:"vcetne energii"`   // A note for the entry
	Amount *string `json:"amount" example:"-320,50"`        // The amount as a string, '.' or ',' as decimal separator. Positive is income, negative is expense.
	Icon   *string `json:"icon" example:"home"`             // Key of the entry's icon, empty for none
}

// EntryMatch is a search hit together with the month it was found in.
type EntryMatch struct {
	Month string `json:"month" example:"2025-03"` // The month the entry belongs to
	models.Entry
}

type EntryResponse struct {
	Data  *models.Entry `json:"data"`                                                    // Data for the entry
	Error *string       `json:"error" example:"the month is not a valid calendar month"` // The error, if any occurred
}

type EntryListResponse struct {
	Data  []EntryMatch `json:"data"`                                                                // List of matching entries
	Error *string      `json:"error" example:"the 'from' month must not be after the 'to' month"` // The error, if any occurred
}
