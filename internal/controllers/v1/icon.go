package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LongVariable/Ziskup/internal/httputil"
	"github.com/LongVariable/Ziskup/internal/models"
)

// RegisterIconRoutes registers the routes for icons with
// the RouterGroup that is passed.
func RegisterIconRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetIcons)
}

type IconListResponse struct {
	Data map[string]string `json:"data"` // The icon set, key to SVG path data
}

// @Summary		Get icons
// @Description	Returns the fixed icon set as a map from icon key to SVG path data.
// @Tags			Icons
// @Produce		json
// @Success		200	{object}	IconListResponse
// @Router			/v1/icons [get]
func GetIcons(c *gin.Context) {
	c.JSON(http.StatusOK, IconListResponse{
		Data: models.Icons,
	})
}
