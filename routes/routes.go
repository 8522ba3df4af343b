package routes

import (
	"VoxRace/controllers"
	"VoxRace/services/catalog"
	"VoxRace/services/game"
	utils "VoxRace/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the REST handlers read from. Results and
// Archive are nil when Redis or Postgres is not configured.
type Dependencies struct {
	Engine   *game.Engine
	Catalog  catalog.Catalog
	Results  controllers.ResultCache
	Archive  controllers.ResultArchive
	AudioDir string
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.AudioDir != "" {
		router.Static("/audio", deps.AudioDir)
	}

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	rooms := api.Group("/rooms")
	{
		rooms.GET("/new-code", controllers.NewRoomCode(deps.Engine))

		rooms.GET("/:code", controllers.GetRoom(deps.Engine))

		rooms.GET("/:code/results", controllers.GetRoomResults(deps.Results, deps.Archive))
	}

	api.GET("/games", controllers.ListGames(deps.Results, deps.Archive))

	api.GET("/catalog/categories", controllers.GetCategories(deps.Catalog))

	api.GET("/preferences", controllers.GetPreferences)

	api.PUT("/preferences", controllers.UpdatePreferences)
}
