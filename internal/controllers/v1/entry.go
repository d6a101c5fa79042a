package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"

	"github.com/LongVariable/Ziskup/internal/aggregate"
	"github.com/LongVariable/Ziskup/internal/httputil"
	"github.com/LongVariable/Ziskup/internal/models"
	"github.com/LongVariable/Ziskup/internal/repository"
	"github.com/LongVariable/Ziskup/internal/types"
)

// RegisterEntryRoutes registers the routes for the cross-month entry
// search with the RouterGroup that is passed. The entry CRUD routes live
// under the month they belong to, see RegisterMonthRoutes.
func RegisterEntryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetEntries)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format, or 'template'"
// @Router			/v1/months/{month}/entries [options]
func OptionsMonthEntries(c *gin.Context) {
	if _, ok := bindMonth(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format, or 'template'"
// @Param			id		path		string	true	"ID of the entry"
// @Router			/v1/months/{month}/entries/{id} [options]
func OptionsMonthEntryDetail(c *gin.Context) {
	if _, ok := bindMonth(c); !ok {
		return
	}

	httputil.OptionsPatchDelete(c)
}

// @Summary		Create entry
// @Description	Appends an empty entry with a fresh ID and zero amount to the month, in the given category.
// @Tags			Entries
// @Produce		json
// @Success		201			{object}	EntryResponse
// @Failure		400			{object}	EntryResponse
// @Failure		500			{object}	EntryResponse
// @Param			month		path		string	true	"Month in YYYY-MM format, or 'template'"
// @Param			category	query		string	false	"Category for the new entry. Defaults to 'Jine'."
// @Router			/v1/months/{month}/entries [post]
func CreateEntry(c *gin.Context) {
	key, ok := bindMonth(c)
	if !ok {
		return
	}

	category := c.Query("category")
	if category == "" {
		category = models.FallbackCategory
	}

	entry, err := repository.Main.AddEntry(key, category)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, EntryResponse{Data: &entry})
}

// @Summary		Update entry
// @Description	Updates an existing entry. Only values to be updated need to be specified. The amount is sent as a string and accepts both '.' and ',' as decimal separator; unparseable input is stored as zero. An unknown entry ID is ignored.
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string			true	"Month in YYYY-MM format, or 'template'"
// @Param			id		path		string			true	"ID of the entry"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/months/{month}/entries/{id} [patch]
func UpdateEntry(c *gin.Context) {
	key, ok := bindMonth(c)
	if !ok {
		return
	}

	var uri URIEntry
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var editable EntryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = repository.Main.UpdateEntry(key, uri.ID, repository.EntryUpdate{
		Name:   editable.Name,
		Note:   editable.Note,
		Amount: editable.Amount,
		Icon:   editable.Icon,
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete entry
// @Description	Deletes the entry from the month. Deleting an unknown entry ID is a no-op.
// @Tags			Entries
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format, or 'template'"
// @Param			id		path		string	true	"ID of the entry"
// @Router			/v1/months/{month}/entries/{id} [delete]
func DeleteEntry(c *gin.Context) {
	key, ok := bindMonth(c)
	if !ok {
		return
	}

	var uri URIEntry
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err := repository.Main.DeleteEntry(key, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Search entries
// @Description	Returns all entries in the month range as a flat list. The search pattern supports glob matching ('*' wildcard) and is matched case-insensitively against name, note and category. A pattern without a wildcard matches as substring.
// @Tags			Entries
// @Produce		json
// @Success		200		{object}	EntryListResponse
// @Failure		400		{object}	EntryListResponse
// @Failure		500		{object}	EntryListResponse
// @Param			from	query		string	false	"First month of the range, YYYY-MM. Defaults to the earliest stored month."
// @Param			to		query		string	false	"Last month of the range, YYYY-MM. Defaults to the latest stored month."
// @Param			search	query		string	false	"Search for this text in name, note and category"
// @Router			/v1/entries [get]
func GetEntries(c *gin.Context) {
	doc, err := repository.Main.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	earliest, latest := monthRange(doc)
	from, to, ok := bindRange(c, earliest, latest)
	if !ok {
		return
	}

	pattern := strings.ToLower(c.Query("search"))
	if !strings.Contains(pattern, "*") {
		pattern = "*" + pattern + "*"
	}

	data := make([]EntryMatch, 0)
	for _, month := range aggregate.FilterRange(doc.RealMonths(), from, to) {
		for _, entry := range month.Entries {
			if matchesEntry(pattern, entry) {
				data = append(data, EntryMatch{
					Month: month.Key().String(),
					Entry: entry,
				})
			}
		}
	}

	c.JSON(http.StatusOK, EntryListResponse{Data: data})
}

// matchesEntry reports whether the glob pattern matches the entry's name,
// note or category.
func matchesEntry(pattern string, entry models.Entry) bool {
	return glob.Glob(pattern, strings.ToLower(entry.Name)) ||
		glob.Glob(pattern, strings.ToLower(entry.Note)) ||
		glob.Glob(pattern, strings.ToLower(entry.Category))
}

// monthRange returns the keys of the earliest and latest real month in
// the document. Both are the zero key when there are no real months.
func monthRange(doc *models.Document) (earliest, latest types.MonthKey) {
	for i, month := range doc.RealMonths() {
		key := month.Key()
		if i == 0 {
			earliest, latest = key, key
			continue
		}

		if key.Before(earliest) {
			earliest = key
		}
		if key.After(latest) {
			latest = key
		}
	}

	return earliest, latest
}
