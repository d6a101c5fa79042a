package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/LongVariable/Ziskup/internal/types"
)

type URIMonth struct {
	Month string `uri:"month" binding:"required" example:"2025-03"` // Month in YYYY-MM format, or "template"
}

type URIEntry struct {
	URIMonth
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the entry
}

// bindMonth parses the month URI parameter. On failure the error response
// has already been written and ok is false.
func bindMonth(c *gin.Context) (types.MonthKey, bool) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return types.MonthKey{}, false
	}

	key, err := types.ParseMonthKey(uri.Month)
	if err != nil {
		c.JSON(status(errMonthParameterInvalid), httpError{
			Error: errMonthParameterInvalid.Error(),
		})
		return types.MonthKey{}, false
	}

	return key, true
}

// QueryRange is the from/to month range shared by the dashboard and the
// entry search. Both boundaries are optional and default to the full
// range of stored months.
type QueryRange struct {
	From string `form:"from" example:"2024-06"` // First month of the range, YYYY-MM
	To   string `form:"to" example:"2025-02"`   // Last month of the range, YYYY-MM
}

// bindRange parses the from/to query parameters against the months that
// exist in the document. On failure the error response has already been
// written and ok is false.
func bindRange(c *gin.Context, earliest, latest types.MonthKey) (from, to types.MonthKey, ok bool) {
	var query QueryRange
	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	from, to = earliest, latest

	var err error
	if query.From != "" {
		if from, err = types.ParseMonthKey(query.From); err != nil {
			c.JSON(status(errMonthParameterInvalid), httpError{Error: errMonthParameterInvalid.Error()})
			return from, to, false
		}
	}

	if query.To != "" {
		if to, err = types.ParseMonthKey(query.To); err != nil {
			c.JSON(status(errMonthParameterInvalid), httpError{Error: errMonthParameterInvalid.Error()})
			return from, to, false
		}
	}

	// With no stored months the default upper bound is the zero key,
	// which would invert an explicit 'from'.
	if to.IsTemplate() {
		to = from
	}

	if from.After(to) {
		c.JSON(status(errRangeInvalid), httpError{Error: errRangeInvalid.Error()})
		return from, to, false
	}

	return from, to, true
}
