package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LongVariable/Ziskup/internal/httputil"
	"github.com/LongVariable/Ziskup/internal/repository"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category order
	{
		r.OPTIONS("/order", OptionsCategoryOrder)
		r.PUT("/order", SetCategoryOrder)
	}

	// Category with name
	{
		r.OPTIONS("/:name", OptionsCategoryDetail)
		r.DELETE("/:name", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/order [options]
func OptionsCategoryOrder(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			name	path	string	true	"Name of the category"
// @Router			/v1/categories/{name} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Get categories
// @Description	Returns the effective category list in display order: built-in and custom categories, without the hidden ones, reordered by the stored order.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{
		Data: repository.Main.Categories(),
	})
}

// @Summary		Create category
// @Description	Creates a new custom category. The name must not be blank and must not collide with any existing category, hidden built-ins included.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryListResponse
// @Failure		400			{object}	CategoryListResponse
// @Failure		500			{object}	CategoryListResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	err = repository.Main.AddCategory(editable.Name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, CategoryListResponse{
		Data: repository.Main.Categories(),
	})
}

// @Summary		Set category order
// @Description	Replaces the stored category display order with the list sent in the body. Categories missing from the list are appended in their base order.
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			order	body		[]string	true	"Ordered category names"
// @Router			/v1/categories/order [put]
func SetCategoryOrder(c *gin.Context) {
	var order []string

	err := httputil.BindData(c, &order)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	err = repository.Main.SetCategoryOrder(order)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: repository.Main.Categories(),
	})
}

// @Summary		Delete category
// @Description	Deletes a category and all its entries in all months. Built-in categories are hidden instead of deleted, but their entries are removed the same way.
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryDeleteResponse
// @Failure		404		{object}	CategoryDeleteResponse
// @Failure		500		{object}	CategoryDeleteResponse
// @Param			name	path		string	true	"Name of the category"
// @Router			/v1/categories/{name} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URICategory
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryDeleteResponse{
			Error: &e,
		})
		return
	}

	hidden, err := repository.Main.DeleteOrHideCategory(uri.Name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryDeleteResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryDeleteResponse{
		Data: &CategoryDeletion{
			Name:       uri.Name,
			Hidden:     hidden,
			Categories: repository.Main.Categories(),
		},
	})
}
