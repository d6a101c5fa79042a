// Package repository implements all mutations of the finance document.
//
// Every operation goes through the store's Update so that the document is
// re-fetched before mutating and persisted right after, one storage write
// per mutation. Nothing here holds a document reference across calls.
package repository

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/LongVariable/Ziskup/internal/models"
	"github.com/LongVariable/Ziskup/internal/storage"
	"github.com/LongVariable/Ziskup/internal/types"
)

var (
	ErrMonthInvalid      = errors.New("the month is not a valid calendar month")
	ErrCategoryNameEmpty = errors.New("the category name must not be empty")
	ErrCategoryExists    = errors.New("this category already exists")
	ErrCategoryUnknown   = errors.New("there is no category with this name")
	ErrIconUnknown       = errors.New("there is no icon with this key")
)

// Repository mutates and reads the finance document.
type Repository struct {
	store *storage.Store
}

// New returns a repository on top of the store.
func New(store *storage.Store) *Repository {
	return &Repository{store: store}
}

// Main is the repository the HTTP handlers use. It is set by Connect.
var Main *Repository

// Connect opens the document store at the dsn and sets Main.
func Connect(dsn string) error {
	store, err := storage.Open(dsn)
	if err != nil {
		return err
	}

	Main = New(store)
	return nil
}

// Close closes the underlying store.
func (r *Repository) Close() error {
	return r.store.Close()
}

// Health reports whether the underlying store is reachable.
func (r *Repository) Health() error {
	return r.store.Health()
}

// MonthInfo is the sidebar line for one month: its key and balance.
type MonthInfo struct {
	Year    int             `json:"year" example:"2025"`
	Month   int             `json:"month" example:"3"`
	Balance decimal.Decimal `json:"balance" example:"250"`
}

// Months lists all real months, newest first, with their balances. The
// template bucket is excluded.
func (r *Repository) Months() []MonthInfo {
	infos := make([]MonthInfo, 0)
	r.store.View(func(doc *models.Document) {
		for _, month := range doc.RealMonths() {
			infos = append(infos, MonthInfo{
				Year:    month.Year,
				Month:   month.Month,
				Balance: month.Balance(),
			})
		}
	})

	slices.SortFunc(infos, func(a, b MonthInfo) int {
		return types.NewMonthKey(b.Year, b.Month).Compare(types.NewMonthKey(a.Year, a.Month))
	})

	return infos
}

// GetOrCreateMonth returns the month bucket for the key, creating it when
// it does not exist yet.
func (r *Repository) GetOrCreateMonth(key types.MonthKey) (models.Month, error) {
	if !key.Valid() {
		return models.Month{}, ErrMonthInvalid
	}

	var month models.Month
	err := r.store.Update(func(doc *models.Document) error {
		month = cloneMonth(doc.GetOrCreateMonth(key))
		return nil
	})

	return month, err
}

// CreateMonth creates the month bucket for the key and pre-fills it from
// the template bucket: when the target has no entries yet and the template
// bucket has some, every template entry is cloned into the month with a
// fresh ID. A month that already has entries is never touched.
func (r *Repository) CreateMonth(key types.MonthKey) (models.Month, error) {
	if !key.Valid() {
		return models.Month{}, ErrMonthInvalid
	}

	var month models.Month
	err := r.store.Update(func(doc *models.Document) error {
		target := doc.GetOrCreateMonth(key)

		if !key.IsTemplate() && len(target.Entries) == 0 {
			if template := doc.FindMonth(types.Template); template != nil {
				for _, entry := range template.Entries {
					target.Entries = append(target.Entries, entry.Clone())
				}
			}
		}

		month = cloneMonth(target)
		return nil
	})

	return month, err
}

// DeleteMonth removes the month bucket. Removing an absent bucket is a
// no-op.
func (r *Repository) DeleteMonth(key types.MonthKey) error {
	if !key.Valid() {
		return ErrMonthInvalid
	}

	return r.store.Update(func(doc *models.Document) error {
		doc.RemoveMonth(key)
		return nil
	})
}

// AddEntry appends an empty entry with a fresh unique ID to the month and
// returns it.
func (r *Repository) AddEntry(key types.MonthKey, category string) (models.Entry, error) {
	if !key.Valid() {
		return models.Entry{}, ErrMonthInvalid
	}

	entry := models.NewEntry(category)
	err := r.store.Update(func(doc *models.Document) error {
		month := doc.GetOrCreateMonth(key)
		month.Entries = append(month.Entries, entry)
		return nil
	})

	return entry, err
}

// EntryUpdate carries the fields of an entry update. Nil fields stay
// unchanged. The amount arrives as the raw input string and is parsed
// locale-flexibly, unparseable input coerces to zero.
type EntryUpdate struct {
	Name   *string `json:"name" example:"Rent"`
	Note   *string `json:"note" example:"incl. utilities"`
	Amount *string `json:"amount" example:"-320,50"`
	Icon   *string `json:"icon" example:"home"`
}

// UpdateEntry applies the update to the entry with the ID within the given
// month only, entries are not searched cross-month. An unknown ID within
// the month drops the update silently; the mismatch is logged since it can
// point at a stale month context in the caller.
func (r *Repository) UpdateEntry(key types.MonthKey, id string, update EntryUpdate) error {
	if !key.Valid() {
		return ErrMonthInvalid
	}

	if update.Icon != nil && !models.IconKnown(*update.Icon) {
		return ErrIconUnknown
	}

	return r.store.Update(func(doc *models.Document) error {
		month := doc.GetOrCreateMonth(key)

		idx := slices.IndexFunc(month.Entries, func(e models.Entry) bool { return e.ID == id })
		if idx < 0 {
			log.Warn().
				Str("entry-id", id).
				Str("month", key.String()).
				Msg("update for unknown entry dropped")
			return nil
		}

		entry := &month.Entries[idx]
		if update.Name != nil {
			entry.Name = *update.Name
		}
		if update.Note != nil {
			entry.Note = *update.Note
		}
		if update.Amount != nil {
			entry.Amount = models.ParseAmount(*update.Amount)
		}
		if update.Icon != nil {
			entry.Icon = *update.Icon
		}

		return nil
	})
}

// DeleteEntry removes the entry with the ID from the month. An unknown ID
// is a no-op.
func (r *Repository) DeleteEntry(key types.MonthKey, id string) error {
	if !key.Valid() {
		return ErrMonthInvalid
	}

	return r.store.Update(func(doc *models.Document) error {
		month := doc.GetOrCreateMonth(key)

		before := len(month.Entries)
		month.Entries = slices.DeleteFunc(month.Entries, func(e models.Entry) bool { return e.ID == id })
		if len(month.Entries) == before {
			log.Warn().
				Str("entry-id", id).
				Str("month", key.String()).
				Msg("delete for unknown entry dropped")
		}

		return nil
	})
}

// Categories returns the effective category list.
func (r *Repository) Categories() []string {
	var categories []string
	r.store.View(func(doc *models.Document) {
		categories = doc.EffectiveCategories()
	})

	return categories
}

// AddCategory appends a custom category. Blank names are rejected, and so
// is any name already in the category universe. A hidden default counts as
// existing: hiding does not free up the name.
func (r *Repository) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryNameEmpty
	}

	return r.store.Update(func(doc *models.Document) error {
		if slices.Contains(doc.CategoryUniverse(), name) {
			return ErrCategoryExists
		}

		doc.CustomCats = append(doc.CustomCats, name)
		return nil
	})
}

// SetCategoryOrder overwrites the stored display order with exactly the
// given sequence, as captured from the current visual arrangement.
func (r *Repository) SetCategoryOrder(order []string) error {
	return r.store.Update(func(doc *models.Document) error {
		doc.CatOrder = order
		return nil
	})
}

// DeleteOrHideCategory removes a category and every entry referencing it
// from every month. A built-in default is hidden rather than deleted, so it
// can be restored; a custom category is gone for good. The entries are
// removed either way. It reports whether the category was hidden.
func (r *Repository) DeleteOrHideCategory(name string) (bool, error) {
	isDefault := models.IsDefaultCategory(name)

	err := r.store.Update(func(doc *models.Document) error {
		if !isDefault && !slices.Contains(doc.CustomCats, name) {
			return ErrCategoryUnknown
		}

		for _, month := range doc.Months {
			month.Entries = slices.DeleteFunc(month.Entries, func(e models.Entry) bool {
				return e.Category == name
			})
		}

		doc.CustomCats = slices.DeleteFunc(doc.CustomCats, func(c string) bool { return c == name })
		doc.CatOrder = slices.DeleteFunc(doc.CatOrder, func(c string) bool { return c == name })

		if isDefault {
			if !slices.Contains(doc.HiddenCats, name) {
				doc.HiddenCats = append(doc.HiddenCats, name)
			}
		} else {
			doc.HiddenCats = slices.DeleteFunc(doc.HiddenCats, func(c string) bool { return c == name })
		}

		return nil
	})

	return isDefault, err
}

// Import normalizes the raw document and makes it the new canonical one,
// replacing the previous document wholesale. On a parse error nothing
// changes. The cache is invalidated so that no consumer keeps working on
// the replaced document.
func (r *Repository) Import(raw []byte) error {
	doc, err := models.NormalizeImport(raw)
	if err != nil {
		return err
	}

	if err := r.store.Replace(doc); err != nil {
		return err
	}

	r.store.Invalidate()
	return nil
}

// Export returns the document pretty-printed.
func (r *Repository) Export() ([]byte, error) {
	return r.store.Export()
}

// Wipe resets the document to an empty one.
func (r *Repository) Wipe() error {
	return r.store.Replace(models.NewDocument())
}

// Snapshot returns a deep copy of the current document for read-only
// consumers like the dashboard.
func (r *Repository) Snapshot() (*models.Document, error) {
	raw, err := r.store.Export()
	if err != nil {
		return nil, err
	}

	return models.ParseDocument(raw), nil
}

// cloneMonth copies a month with its own entry sequence, so callers can
// hold it without referencing the stored document.
func cloneMonth(m *models.Month) models.Month {
	month := models.Month{Year: m.Year, Month: m.Month, Entries: make([]models.Entry, len(m.Entries))}
	copy(month.Entries, m.Entries)
	return month
}
