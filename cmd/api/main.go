package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shiftwise/staff-scheduler/internal/cache"
	"github.com/shiftwise/staff-scheduler/internal/config"
	dbpkg "github.com/shiftwise/staff-scheduler/internal/db"
	"github.com/shiftwise/staff-scheduler/internal/middleware"
	"github.com/shiftwise/staff-scheduler/internal/routes"
	"github.com/shiftwise/staff-scheduler/internal/storage"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	deps := routes.Deps{}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		deps.HoursCache = cache.NewOpeningHours(rdb)
	}

	if cfg.S3Bucket != "" {
		deps.Images = storage.NewS3ImageStore(cfg)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, deps)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
