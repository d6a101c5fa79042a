package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Links struct {
	Categories string `json:"categories" example:"/v1/categories"` // URL of the category endpoints
	Dashboard  string `json:"dashboard" example:"/v1/dashboard"`   // URL of the dashboard endpoint
	Entries    string `json:"entries" example:"/v1/entries"`       // URL of the entry search endpoint
	Export     string `json:"export" example:"/v1/export"`         // URL of the export endpoints
	Icons      string `json:"icons" example:"/v1/icons"`           // URL of the icon endpoint
	Import     string `json:"import" example:"/v1/import"`         // URL of the import endpoint
	Months     string `json:"months" example:"/v1/months"`         // URL of the month endpoints
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories: "/v1/categories",
			Dashboard:  "/v1/dashboard",
			Entries:    "/v1/entries",
			Export:     "/v1/export",
			Icons:      "/v1/icons",
			Import:     "/v1/import",
			Months:     "/v1/months",
		},
	})
}
