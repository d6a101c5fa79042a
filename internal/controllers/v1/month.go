package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LongVariable/Ziskup/internal/httputil"
	"github.com/LongVariable/Ziskup/internal/repository"
	"github.com/LongVariable/Ziskup/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthList)
		r.GET("", GetMonths)
		r.POST("", CreateMonth)
	}

	// Month with key
	{
		r.OPTIONS("/:month", OptionsMonthDetail)
		r.GET("/:month", GetMonth)
		r.DELETE("/:month", DeleteMonth)
	}

	// Entries of a month
	{
		r.OPTIONS("/:month/entries", OptionsMonthEntries)
		r.POST("/:month/entries", CreateEntry)
		r.OPTIONS("/:month/entries/:id", OptionsMonthEntryDetail)
		r.PATCH("/:month/entries/:id", UpdateEntry)
		r.DELETE("/:month/entries/:id", DeleteEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonthList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format, or 'template'"
// @Router			/v1/months/{month} [options]
func OptionsMonthDetail(c *gin.Context) {
	if _, ok := bindMonth(c); !ok {
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get months
// @Description	Returns all stored months, newest first, with their balances. The template bucket is not listed.
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		500	{object}	MonthListResponse
// @Router			/v1/months [get]
func GetMonths(c *gin.Context) {
	c.JSON(http.StatusOK, MonthListResponse{
		Data: repository.Main.Months(),
	})
}

// @Summary		Create month
// @Description	Creates the month bucket if it does not exist. A newly created empty month is pre-filled with copies of the template bucket's entries. Year and month 0 address the template bucket itself.
// @Tags			Months
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	body		MonthEditable	true	"Month"
// @Router			/v1/months [post]
func CreateMonth(c *gin.Context) {
	var editable MonthEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	month, err := repository.Main.CreateMonth(types.NewMonthKey(editable.Year, editable.Month))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	data := newMonth(month, repository.Main.Categories())
	c.JSON(http.StatusCreated, MonthResponse{Data: &data})
}

// @Summary		Get month
// @Description	Returns the month with its entries grouped by category and its totals. A month that does not exist yet is created empty on access.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"Month in YYYY-MM format, or 'template'"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	key, ok := bindMonth(c)
	if !ok {
		return
	}

	month, err := repository.Main.GetOrCreateMonth(key)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	data := newMonth(month, repository.Main.Categories())
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Delete month
// @Description	Deletes the month bucket with all its entries. Deleting a month that does not exist is a no-op.
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format, or 'template'"
// @Router			/v1/months/{month} [delete]
func DeleteMonth(c *gin.Context) {
	key, ok := bindMonth(c)
	if !ok {
		return
	}

	err := repository.Main.DeleteMonth(key)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
