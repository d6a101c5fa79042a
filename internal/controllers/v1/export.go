package v1

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LongVariable/Ziskup/internal/httputil"
	"github.com/LongVariable/Ziskup/internal/repository"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetExport)
	}

	// CSV export
	{
		r.OPTIONS("/csv", httputil.OptionsGet)
		r.GET("/csv", GetExportCSV)
	}
}

// @Summary		Export
// @Description	Returns the complete document as a pretty-printed JSON download. The file re-imports losslessly.
// @Tags			Export
// @Produce		json
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	raw, err := repository.Main.Export()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("finance-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", raw)
}

// @Summary		Export CSV
// @Description	Returns all entries of all real months as a semicolon-separated CSV download with Czech number formatting, for spreadsheet use.
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export/csv [get]
func GetExportCSV(c *gin.Context) {
	doc, err := repository.Main.Snapshot()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	printer := message.NewPrinter(language.Czech)

	_ = w.Write([]string{"Mesic", "Kategorie", "Nazev", "Poznamka", "Castka"})
	for _, month := range doc.RealMonths() {
		key := month.Key().String()
		for _, entry := range month.Entries {
			_ = w.Write([]string{
				key,
				entry.Category,
				entry.Name,
				entry.Note,
				printer.Sprintf("%.2f", entry.Amount.InexactFloat64()),
			})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("finance-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
