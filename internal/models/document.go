// Package models implements the document model for Ziskup.
//
// The whole application state is one Document: a set of month buckets with
// their entries plus three advisory category overlays (custom categories,
// display order, hidden defaults). The document is persisted as a whole,
// there is no finer-grained unit of storage.
package models

import (
	"github.com/LongVariable/Ziskup/internal/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are serialized as plain JSON numbers so that exports stay
	// compatible with the web app's document format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Document is the single persisted object.
type Document struct {
	Months     []*Month `json:"months"`     // All month buckets, including the template bucket
	CustomCats []string `json:"customCats"` // User-defined categories, insertion order relevant
	CatOrder   []string `json:"catOrder"`   // Last saved display order, may contain stale names
	HiddenCats []string `json:"hiddenCats"` // Default categories the user has hidden
}

// Month is the container for all entries of one (year, month) bucket.
// year=0, month=0 is the template bucket.
type Month struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Entries []Entry `json:"entries"`
}

// Key returns the bucket key of the month.
func (m *Month) Key() types.MonthKey {
	return types.NewMonthKey(m.Year, m.Month)
}

// Balance returns the signed sum of all entries in the month.
func (m *Month) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range m.Entries {
		sum = sum.Add(entry.Amount)
	}

	return sum
}

// NewDocument returns an empty document with all collections initialized,
// so that it marshals to empty JSON arrays instead of null.
func NewDocument() *Document {
	return &Document{
		Months:     make([]*Month, 0),
		CustomCats: make([]string, 0),
		CatOrder:   make([]string, 0),
		HiddenCats: make([]string, 0),
	}
}

// Repair replaces every collection that did not survive deserialization as
// a proper sequence with an empty one. Structural damage is absorbed, never
// reported.
func (d *Document) Repair() {
	if d.Months == nil {
		d.Months = make([]*Month, 0)
	}
	if d.CustomCats == nil {
		d.CustomCats = make([]string, 0)
	}
	if d.CatOrder == nil {
		d.CatOrder = make([]string, 0)
	}
	if d.HiddenCats == nil {
		d.HiddenCats = make([]string, 0)
	}

	months := make([]*Month, 0, len(d.Months))
	for _, month := range d.Months {
		if month == nil {
			continue
		}
		if month.Entries == nil {
			month.Entries = make([]Entry, 0)
		}
		months = append(months, month)
	}
	d.Months = months
}

// FindMonth returns the month bucket for the key, or nil.
func (d *Document) FindMonth(key types.MonthKey) *Month {
	for _, month := range d.Months {
		if month.Key() == key {
			return month
		}
	}

	return nil
}

// GetOrCreateMonth returns the month bucket for the key, creating and
// appending an empty one when it does not exist yet. The returned month
// always has a proper entry sequence.
func (d *Document) GetOrCreateMonth(key types.MonthKey) *Month {
	month := d.FindMonth(key)
	if month == nil {
		month = &Month{Year: key.Year, Month: key.Month, Entries: make([]Entry, 0)}
		d.Months = append(d.Months, month)
	}

	if month.Entries == nil {
		month.Entries = make([]Entry, 0)
	}

	return month
}

// RemoveMonth removes the month bucket for the key. It reports whether a
// bucket was removed.
func (d *Document) RemoveMonth(key types.MonthKey) bool {
	months := make([]*Month, 0, len(d.Months))
	removed := false
	for _, month := range d.Months {
		if month.Key() == key {
			removed = true
			continue
		}
		months = append(months, month)
	}

	d.Months = months
	return removed
}

// RealMonths returns all month buckets except the template bucket.
func (d *Document) RealMonths() []*Month {
	months := make([]*Month, 0, len(d.Months))
	for _, month := range d.Months {
		if month.Key().IsTemplate() {
			continue
		}
		months = append(months, month)
	}

	return months
}
