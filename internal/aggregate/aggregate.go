// Package aggregate computes derived statistics over entry collections.
//
// Everything in here is pure: aggregates are recomputed eagerly and fully
// from the entries passed in on every call. With personal-use data sizes
// there is nothing to be gained from incremental aggregate state, and
// nothing that can get out of sync.
package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/LongVariable/Ziskup/internal/models"
	"github.com/LongVariable/Ziskup/internal/types"
)

// TopItems is how many items the by-item ranking keeps before collapsing
// the rest into one bucket.
const TopItems = 10

// BlankName is the bucket blank entry names fall into.
const BlankName = "—"

// OtherBucket is the synthetic bucket the by-item ranking collapses
// excluded items into.
const OtherBucket = "Ostatní"

// MonthNames holds the Czech month names, indexed 1-12.
var MonthNames = [13]string{"", "Leden", "Únor", "Březen", "Duben", "Květen", "Červen", "Červenec", "Srpen", "Září", "Říjen", "Listopad", "Prosinec"}

// Kind selects the sign of the entries an aggregate is computed over.
type Kind int

const (
	Income  Kind = iota // entries with amount > 0
	Expense             // entries with amount < 0
)

func (k Kind) matches(amount decimal.Decimal) bool {
	if k == Income {
		return amount.IsPositive()
	}

	return amount.IsNegative()
}

// SumIncome returns the sum of all positive amounts.
func SumIncome(entries []models.Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range entries {
		if entry.Amount.IsPositive() {
			sum = sum.Add(entry.Amount)
		}
	}

	return sum
}

// SumExpense returns the sum of the absolute values of all negative amounts.
func SumExpense(entries []models.Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range entries {
		if entry.Amount.IsNegative() {
			sum = sum.Add(entry.Amount.Abs())
		}
	}

	return sum
}

// Balance returns income minus expense.
func Balance(entries []models.Entry) decimal.Decimal {
	return SumIncome(entries).Sub(SumExpense(entries))
}

// ByCategory sums the absolute amounts of all entries of the given kind,
// keyed by category.
func ByCategory(entries []models.Entry, kind Kind) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		if !kind.matches(entry.Amount) {
			continue
		}
		sums[entry.Category] = sums[entry.Category].Add(entry.Amount.Abs())
	}

	return sums
}

// NamedAmount is one bucket of a ranking.
type NamedAmount struct {
	Name   string          `json:"name" example:"Rent"`
	Amount decimal.Decimal `json:"amount" example:"400"`
}

// ByName sums the absolute amounts of all entries of the given kind, keyed
// by trimmed entry name. Names that are blank after trimming fall into one
// placeholder bucket.
func ByName(entries []models.Entry, kind Kind) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		if !kind.matches(entry.Amount) {
			continue
		}

		name := strings.TrimSpace(entry.Name)
		if name == "" {
			name = BlankName
		}
		sums[name] = sums[name].Add(entry.Amount.Abs())
	}

	return sums
}

// RankByName ranks the ByName buckets by descending value and truncates to
// top buckets. Everything below the cut collapses into one synthetic
// "Ostatní" bucket holding the sum of the excluded items. Ties keep the
// order in which names were first encountered.
func RankByName(entries []models.Entry, kind Kind, top int) []NamedAmount {
	sums := make(map[string]decimal.Decimal)
	names := make([]string, 0)
	for _, entry := range entries {
		if !kind.matches(entry.Amount) {
			continue
		}

		name := strings.TrimSpace(entry.Name)
		if name == "" {
			name = BlankName
		}
		if _, seen := sums[name]; !seen {
			names = append(names, name)
		}
		sums[name] = sums[name].Add(entry.Amount.Abs())
	}

	sort.SliceStable(names, func(i, j int) bool {
		return sums[names[i]].GreaterThan(sums[names[j]])
	})

	ranked := make([]NamedAmount, 0, top+1)
	for i, name := range names {
		if i >= top {
			break
		}
		ranked = append(ranked, NamedAmount{Name: name, Amount: sums[name]})
	}

	if len(names) > top {
		rest := decimal.Zero
		for _, name := range names[top:] {
			rest = rest.Add(sums[name])
		}
		ranked = append(ranked, NamedAmount{Name: OtherBucket, Amount: rest})
	}

	return ranked
}

// TopEntry returns the single highest-magnitude entry of the given kind, or
// nil when there is none. Ties are broken by first-encountered-wins: an
// entry only replaces the current best when it is strictly better.
func TopEntry(entries []models.Entry, kind Kind) *models.Entry {
	var best *models.Entry
	for i := range entries {
		if !kind.matches(entries[i].Amount) {
			continue
		}

		if best == nil || entries[i].Amount.Abs().GreaterThan(best.Amount.Abs()) {
			best = &entries[i]
		}
	}

	return best
}

// FilterRange returns the months lying in the inclusive [from, to] range.
// The template bucket is never included.
func FilterRange(months []*models.Month, from, to types.MonthKey) []*models.Month {
	filtered := make([]*models.Month, 0, len(months))
	for _, month := range months {
		if month.Key().In(from, to) {
			filtered = append(filtered, month)
		}
	}

	return filtered
}

// Entries flattens the entries of all months into one collection.
func Entries(months []*models.Month) []models.Entry {
	entries := make([]models.Entry, 0)
	for _, month := range months {
		entries = append(entries, month.Entries...)
	}

	return entries
}

// MonthBalance is one point of the per-month balance series.
type MonthBalance struct {
	Year    int             `json:"year" example:"2025"`
	Month   int             `json:"month" example:"3"`
	Label   string          `json:"label" example:"Březen 2025"`
	Balance decimal.Decimal `json:"balance" example:"250"`
}

// BalanceSeries maps the months, sorted ascending, to their balances.
func BalanceSeries(months []*models.Month) []MonthBalance {
	sorted := make([]*models.Month, len(months))
	copy(sorted, months)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key().Before(sorted[j].Key())
	})

	series := make([]MonthBalance, 0, len(sorted))
	for _, month := range sorted {
		label := ""
		if month.Month >= 1 && month.Month <= 12 {
			label = fmt.Sprintf("%s %d", MonthNames[month.Month], month.Year)
		}
		series = append(series, MonthBalance{
			Year:    month.Year,
			Month:   month.Month,
			Label:   label,
			Balance: month.Balance(),
		})
	}

	return series
}

// BreakdownRow is one category of the dashboard expense breakdown.
type BreakdownRow struct {
	Category string          `json:"category" example:"Nakupy"`
	Amount   decimal.Decimal `json:"amount" example:"250"`
	Percent  int64           `json:"percent" example:"100"` // Bar width relative to the top category
}

// CategoryBreakdown ranks the categories of the effective list by their
// expense total, descending, skipping categories without expenses. Percent
// is the bar width relative to the top category.
func CategoryBreakdown(entries []models.Entry, categories []string) []BreakdownRow {
	sums := ByCategory(entries, Expense)

	ranked := make([]string, 0, len(categories))
	for _, category := range categories {
		if sums[category].IsPositive() {
			ranked = append(ranked, category)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return sums[ranked[i]].GreaterThan(sums[ranked[j]])
	})

	if len(ranked) == 0 {
		return []BreakdownRow{}
	}

	max := sums[ranked[0]]
	rows := make([]BreakdownRow, 0, len(ranked))
	for _, category := range ranked {
		rows = append(rows, BreakdownRow{
			Category: category,
			Amount:   sums[category],
			Percent:  sums[category].Div(max).Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		})
	}

	return rows
}

// CategoryEntries returns the entries belonging to one category.
func CategoryEntries(entries []models.Entry, category string) []models.Entry {
	filtered := make([]models.Entry, 0)
	for _, entry := range entries {
		if entry.Category == category {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// UnknownCategories reports the categories appearing in the entries that
// are not part of the effective list, in first-encountered order. Such
// categories can appear after imports of documents from older exports.
func UnknownCategories(entries []models.Entry, categories []string) []string {
	unknown := make([]string, 0)
	for _, entry := range entries {
		if !slices.Contains(categories, entry.Category) && !slices.Contains(unknown, entry.Category) {
			unknown = append(unknown, entry.Category)
		}
	}

	return unknown
}
