package v1

import (
	"github.com/shopspring/decimal"

	"github.com/LongVariable/Ziskup/internal/aggregate"
	"github.com/LongVariable/Ziskup/internal/models"
	"github.com/LongVariable/Ziskup/internal/repository"
)

// MonthEditable represents all user configurable parameters
type MonthEditable struct {
	Year  int `json:"year" example:"2025" default:"0"` // Calendar year, 0 for the template bucket
	Month int `json:"month" example:"3" default:"0"`   // Calendar month 1-12, 0 for the template bucket
}

// Month is a month bucket with its entries grouped by category.
type Month struct {
	Year    int             `json:"year" example:"2025"`      // Calendar year, 0 for the template bucket
	Month   int             `json:"month" example:"3"`        // Calendar month, 0 for the template bucket
	Key     string          `json:"key" example:"2025-03"`    // The month in YYYY-MM format, or "template"
	Name    string          `json:"name" example:"Březen"`    // Czech name of the month, empty for the template bucket
	Income  decimal.Decimal `json:"income" example:"1000"`    // Sum of all positive amounts
	Expense decimal.Decimal `json:"expense" example:"320.5"`  // Sum of all negative amounts, as a positive number
	Balance decimal.Decimal `json:"balance" example:"679.5"`  // Income minus expense
	Groups  []CategoryGroup `json:"groups"`                   // Entries grouped by category, in effective category order
}

// CategoryGroup is the per-category section of a month view.
type CategoryGroup struct {
	Category string          `json:"category" example:"Nakupy"` // Name of the category
	Count    int             `json:"count" example:"2"`         // Number of entries in the category
	Sum      decimal.Decimal `json:"sum" example:"-120"`        // Signed sum of the category's entries
	Entries  []models.Entry  `json:"entries"`                   // The entries themselves, in document order
}

// newMonth builds the API resource for a month. Categories that still
// appear on entries but are no longer part of the effective list (this
// happens after lenient imports) are appended after the known ones.
func newMonth(month models.Month, categories []string) Month {
	name := ""
	if month.Month >= 1 && month.Month <= 12 {
		name = aggregate.MonthNames[month.Month]
	}

	data := Month{
		Year:    month.Year,
		Month:   month.Month,
		Key:     month.Key().String(),
		Name:    name,
		Income:  aggregate.SumIncome(month.Entries),
		Expense: aggregate.SumExpense(month.Entries),
		Balance: aggregate.Balance(month.Entries),
		Groups:  make([]CategoryGroup, 0),
	}

	categories = append(categories, aggregate.UnknownCategories(month.Entries, categories)...)

	for _, category := range categories {
		entries := aggregate.CategoryEntries(month.Entries, category)

		data.Groups = append(data.Groups, CategoryGroup{
			Category: category,
			Count:    len(entries),
			Sum:      aggregate.Balance(entries),
			Entries:  entries,
		})
	}

	return data
}

type MonthListResponse struct {
	Data  []repository.MonthInfo `json:"data"`                                                      // List of months
	Error *string                `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                                      // Data for the month
	Error *string `json:"error" example:"the month is not a valid calendar month"` // The error, if any occurred
}
