package controllers

import (
	"VoxRace/services/game"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get a fresh room code
// @Description Returns a generated code that no live room is using
// @Tags rooms
// @Produce json
// @Success 200 {object} object{code=string}
// @Router /rooms/new-code [get]
func NewRoomCode(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": engine.NewCode()})
	}
}

// @Summary Get a live room
// @Description Returns the state, players, leaderboard and round info of a room
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} game.Snapshot
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code} [get]
func GetRoom(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := engine.Snapshot(c.Param("code"))
		if err != nil {
			log.Printf("[ROOM-INFO-ERROR] %v", err)
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

func statusFor(err error) int {
	switch game.Kind(err) {
	case game.KindValidation:
		return http.StatusBadRequest
	case game.KindNotFound:
		return http.StatusNotFound
	case game.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
