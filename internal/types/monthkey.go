// Package types implements special types for Ziskup.
package types

import (
	"fmt"
	"regexp"
	"time"
)

// Template is the key of the template bucket. It is never listed as a real
// month and only serves as the copy source when a new month is created.
var Template = MonthKey{}

var monthKeyPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// MonthKey identifies a month bucket by calendar year and month.
// The zero value is the template bucket.
type MonthKey struct {
	Year  int `json:"year" example:"2025"`
	Month int `json:"month" example:"3"`
}

// NewMonthKey returns the MonthKey for a year and month.
func NewMonthKey(year, month int) MonthKey {
	return MonthKey{Year: year, Month: month}
}

// MonthKeyOf returns the MonthKey of the month a time occurs in.
func MonthKeyOf(t time.Time) MonthKey {
	year, month, _ := t.Date()
	return MonthKey{Year: year, Month: int(month)}
}

// ParseMonthKey parses a "YYYY-MM" string. The literal string "template"
// parses to the template bucket.
func ParseMonthKey(s string) (MonthKey, error) {
	if s == "template" {
		return Template, nil
	}

	if !monthKeyPattern.MatchString(s) {
		return MonthKey{}, fmt.Errorf("%q is not a valid month, use YYYY-MM", s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("%q is not a valid month, use YYYY-MM", s)
	}

	return MonthKeyOf(t), nil
}

// String returns the key formatted as YYYY-MM, or "template".
func (k MonthKey) String() string {
	if k.IsTemplate() {
		return "template"
	}

	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// IsTemplate reports whether the key addresses the template bucket.
func (k MonthKey) IsTemplate() bool {
	return k.Year == 0
}

// Valid reports whether the key is the template bucket or a real
// calendar month.
func (k MonthKey) Valid() bool {
	if k.IsTemplate() {
		return k.Month == 0
	}

	return k.Year > 0 && k.Month >= 1 && k.Month <= 12
}

// Compare orders keys chronologically. It returns -1 when k is before n,
// 0 when they are equal and 1 when k is after n. The template bucket
// sorts before every real month.
func (k MonthKey) Compare(n MonthKey) int {
	if k.Year != n.Year {
		if k.Year < n.Year {
			return -1
		}
		return 1
	}

	if k.Month != n.Month {
		if k.Month < n.Month {
			return -1
		}
		return 1
	}

	return 0
}

// Before reports whether k is before n.
func (k MonthKey) Before(n MonthKey) bool {
	return k.Compare(n) < 0
}

// After reports whether k is after n.
func (k MonthKey) After(n MonthKey) bool {
	return k.Compare(n) > 0
}

// In reports whether k lies in the inclusive range [from, to].
// The template bucket is never in any range.
func (k MonthKey) In(from, to MonthKey) bool {
	if k.IsTemplate() {
		return false
	}

	return k.Compare(from) >= 0 && k.Compare(to) <= 0
}
