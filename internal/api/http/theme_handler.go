package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"character-auction/internal/theme"
)

// @Summary List themes
// @Description File-backed catalog plus user-imported overlays, overlays first
// @Tags Theme
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /themes [get]
func ListThemesHandler(catalog *theme.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		themes, err := catalog.Themes()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load themes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"themes": themes})
	}
}

// @Summary Import custom themes
// @Description Accepts a raw dataset array; malformed entries are dropped individually
// @Tags Theme
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /themes/import [post]
func ImportThemesHandler(catalog *theme.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		themes, err := catalog.Import(data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payload must be a JSON array of datasets"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"themes": themes, "count": len(themes)})
	}
}
