package main

import (
	"VoxRace/config"
	_ "VoxRace/docs"
	"VoxRace/middleware"
	"VoxRace/routes"
	"VoxRace/services/archive"
	"VoxRace/services/game"
	"VoxRace/services/redis"
	"VoxRace/services/rooms"
	"VoxRace/services/socket_io"
	socketio_types "VoxRace/services/socket_io/types"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @title VoxRace API
// @version 1.0
// @description Gin-Gonic server for the "VoxRace" guess-the-song game
// @BasePath /
func main() {
	log.Println("Setting up server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	var gormDB *gorm.DB
	if cfg.PostgresEnabled() {
		gormDB, err = config.ConnectGORM(cfg)
		if err != nil {
			log.Fatalf("Error connecting to PostgreSQL: %v", err)
		}
		log.Println("GORM Connected")

		// Only migrate in development or during deployment
		if cfg.MigratePostgres {
			log.Println("Migrating PostgreSQL database...")
			if err := config.MigrateDatabase(gormDB); err != nil {
				log.Printf("Warning: Database migration failed: %v", err)
			}
		}
	} else {
		log.Println("POSTGRES_HOST not set, results will not be archived")
	}

	songs, err := config.LoadCatalog(cfg, gormDB)
	if err != nil {
		log.Fatalf("Error loading song catalog: %v", err)
	}

	var redisClient *redis.RedisClient
	if cfg.RedisEnabled() {
		redisClient, err = config.Connect_redis(cfg)
		if err != nil {
			log.Fatalf("Error connecting to Redis: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, results will not be cached")
	}

	deps := routes.Dependencies{Catalog: songs, AudioDir: cfg.AudioDir}
	var sinks []game.ResultSink
	if redisClient != nil {
		cache := redis.NewResultCache(redisClient, cfg.ResultsTTL)
		sinks = append(sinks, cache)
		deps.Results = cache
	}
	if gormDB != nil {
		a := archive.New(gormDB)
		sinks = append(sinks, a)
		deps.Archive = a
	}

	sio := socketio_types.NewSocketServer()
	engine := game.NewEngine(rooms.NewStore(), rooms.NewRegistry(), sio, songs,
		game.WithStartBuffer(cfg.SongStartBuffer),
		game.WithRetention(cfg.FinishedRoomRetention),
		game.WithResultSinks(sinks...),
	)
	deps.Engine = engine

	r := gin.Default()

	middleware.SetUpMiddleware(r, cfg)

	routes.SetupRoutes(r, deps)

	socketServer := (*socket_io.MySocketServer)(sio)
	socketServer.Start(r, engine, cfg.SocketDebug, cfg.Origins())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Printf("Server started on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Println("Shutting down server...")

	socketServer.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}
	if redisClient != nil {
		if err := redis.CloseRedis(redisClient); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}
	}
	if gormDB != nil {
		if err := config.ClosePostgres(gormDB); err != nil {
			log.Printf("Error closing PostgreSQL: %v", err)
		}
	}
	log.Println("Server stopped")
}
