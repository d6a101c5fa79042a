package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is one income or expense transaction line. The sign of the amount
// determines the kind: positive is income, negative is expense.
type Entry struct {
	ID       string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // Unique ID, stable across edits
	Name     string          `json:"name" example:"Salary"`
	Note     string          `json:"note" example:"March, incl. bonus"`
	Amount   decimal.Decimal `json:"amount" example:"1000"`
	Category string          `json:"category" example:"Prace"`
	Icon     string          `json:"icon,omitempty" example:"cash"` // Key into the fixed icon set
}

// NewEntry returns an empty entry for a category with a freshly
// generated ID.
func NewEntry(category string) Entry {
	return Entry{
		ID:       uuid.NewString(),
		Amount:   decimal.Zero,
		Category: category,
	}
}

// Clone returns a copy of the entry with a freshly generated ID. Used when
// template entries are copied into a new month.
func (e Entry) Clone() Entry {
	e.ID = uuid.NewString()
	return e
}

// ParseAmount parses a decimal string the way the entry form accepts it:
// both "." and "," work as the decimal separator and spaces are ignored.
// Anything unparseable coerces to zero since the input supports live typing
// of partial values.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return amount
}
