package controllers

import (
	"VoxRace/models"
	"VoxRace/services/redis"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultGamesLimit = 20
	maxGamesLimit     = 100
)

// ResultCache is the short-lived store of finished games
type ResultCache interface {
	Get(ctx context.Context, roomCode string) (*models.GameResult, error)
	List(ctx context.Context, limit int) ([]models.GameResult, error)
}

// ResultArchive is the permanent history of finished games
type ResultArchive interface {
	Recent(ctx context.Context, roomCode string, limit int) ([]models.GameResult, error)
}

// @Summary Get the last result of a room
// @Description Final standings of the latest game played in a room. Looks in the Redis cache first and then in the archive.
// @Tags results
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} models.GameResult
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /rooms/{code}/results [get]
func GetRoomResults(cache ResultCache, archive ResultArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
		ctx := c.Request.Context()

		if cache != nil {
			result, err := cache.Get(ctx, code)
			if err == nil {
				c.JSON(http.StatusOK, result)
				return
			}
			if !errors.Is(err, redis.ErrResultNotFound) {
				_ = c.Error(fmt.Errorf("cache lookup for room %s: %w", code, err))
			}
		}

		if archive != nil {
			results, err := archive.Recent(ctx, code, 1)
			if err != nil {
				_ = c.Error(fmt.Errorf("archive lookup for room %s: %w", code, err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching results"})
				return
			}
			if len(results) > 0 {
				c.JSON(http.StatusOK, results[0])
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "No results for room " + code})
	}
}

// @Summary List finished games
// @Description Most recent finished games, newest first
// @Tags results
// @Produce json
// @Param limit query int false "Max number of games (default 20, max 100)"
// @Success 200 {array} models.GameResult
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /games [get]
func ListGames(cache ResultCache, archive ResultArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultGamesLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = min(n, maxGamesLimit)
		}

		var (
			results []models.GameResult
			err     error
		)
		switch {
		case archive != nil:
			results, err = archive.Recent(c.Request.Context(), "", limit)
		case cache != nil:
			results, err = cache.List(c.Request.Context(), limit)
		}
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching games"})
			return
		}
		if results == nil {
			results = []models.GameResult{}
		}
		c.JSON(http.StatusOK, results)
	}
}
