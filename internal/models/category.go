package models

import (
	"golang.org/x/exp/slices"
)

// DefaultCategories are the built-in categories, in their initial display
// order. They can be hidden but never deleted.
var DefaultCategories = []string{"Prace", "Sporeni", "Investice", "Nakupy", "Jine"}

// FallbackCategory is assigned to imported entries without a category.
const FallbackCategory = "Jine"

// IsDefaultCategory reports whether the name is a built-in category.
func IsDefaultCategory(name string) bool {
	return slices.Contains(DefaultCategories, name)
}

// CategoryUniverse returns every known category name: defaults first, then
// custom categories in insertion order. Hidden defaults are included, they
// stay in the universe so that their names cannot be reused.
func (d *Document) CategoryUniverse() []string {
	universe := make([]string, 0, len(DefaultCategories)+len(d.CustomCats))
	universe = append(universe, DefaultCategories...)
	universe = append(universe, d.CustomCats...)
	return universe
}

// EffectiveCategories derives the ordered, visible category list all views
// consume: the category universe minus hidden names, reordered by the saved
// display order. Names in the saved order come first, in that order; the
// remaining visible categories append in universe order. Stale names in the
// saved order are dropped silently.
func (d *Document) EffectiveCategories() []string {
	base := make([]string, 0, len(DefaultCategories)+len(d.CustomCats))
	for _, name := range d.CategoryUniverse() {
		if !slices.Contains(d.HiddenCats, name) {
			base = append(base, name)
		}
	}

	ordered := make([]string, 0, len(base))
	for _, name := range d.CatOrder {
		if slices.Contains(base, name) && !slices.Contains(ordered, name) {
			ordered = append(ordered, name)
		}
	}

	for _, name := range base {
		if !slices.Contains(ordered, name) {
			ordered = append(ordered, name)
		}
	}

	return ordered
}
