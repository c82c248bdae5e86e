package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"character-auction/internal/theme/dragonball"
)

// @Summary Fetch the Dragon Ball character catalog
// @Description Full upstream catalog with the distinct race/affiliation filter options
// @Tags Characters
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /characters/dragonball [get]
func DragonBallCharactersHandler(client *dragonball.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		chars, err := client.FetchAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch characters"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"characters": chars,
			"filters": gin.H{
				"races":        dragonball.UniqueRaces(chars),
				"affiliations": dragonball.UniqueAffiliations(chars),
			},
		})
	}
}

// @Summary Filter Dragon Ball characters
// @Description Filter by races/affiliations, optionally flattening transformations into distinct characters
// @Tags Characters
// @Accept json
// @Produce json
// @Param request body dragonball.Filter true "Filter"
// @Success 200 {object} map[string]interface{}
// @Router /characters/dragonball [post]
func FilterDragonBallCharactersHandler(client *dragonball.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter dragonball.Filter
		if err := c.BindJSON(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		chars, err := client.FetchAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch characters"})
			return
		}
		filtered := dragonball.FilterCharacters(chars, filter)
		c.JSON(http.StatusOK, gin.H{"characters": filtered, "count": len(filtered)})
	}
}
