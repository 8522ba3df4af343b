package controllers

import (
	game_constants "VoxRace/constants/game"
	"VoxRace/services/catalog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// @Summary List song categories
// @Description Categories a room can be created with. "Mixed" draws from every category.
// @Tags catalog
// @Produce json
// @Success 200 {object} object{categories=[]string,songs=integer}
// @Router /catalog/categories [get]
func GetCategories(songs catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := lo.Uniq(append([]string{game_constants.DEFAULT_CATEGORY}, songs.Categories()...))
		c.JSON(http.StatusOK, gin.H{
			"categories": categories,
			"songs":      songs.Len(),
		})
	}
}
