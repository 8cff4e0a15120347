package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mrozco/galleria/gallery/application"
	"github.com/mrozco/galleria/gallery/persistence"
	"github.com/mrozco/galleria/internal/config"
	"github.com/mrozco/galleria/internal/middleware"
	"github.com/mrozco/galleria/internal/rest"
	"github.com/mrozco/galleria/shared/db/sqlite"
	"github.com/mrozco/galleria/shared/views"
)

const (
	shutdownTimeout = 5 * time.Second
	startupTimeout  = 10 * time.Second
)

func main() {
	props, err := config.ReadProperties()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read configuration")
	}

	if level, err := zerolog.ParseLevel(props.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	database := sqlite.NewSQLiteDB(&sqlite.SQLiteConfig{Path: props.Storage.SQLitePath})
	if err := database.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	store := application.NewGalleryStore(persistence.NewCollectionRepository(database.DB()))
	gate := application.NewSessionGate(props.Admin.Secret, persistence.NewSessionRepository(database.DB()))
	pipeline := application.NewPipeline()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	store.Hydrate(startupCtx)
	gate.Hydrate(startupCtx)
	cancelStartup()

	// Fire-and-forget view counter ping; display-only, failure leaves the
	// total unknown.
	tracker := &views.Tracker{}
	if props.Views.CounterURL != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
			defer cancel()
			total, err := views.NewClient(props.Views.CounterURL).Report(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("View counter unavailable")
				return
			}
			tracker.Set(total)
		}()
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     props.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rest.NewApi(router, store, pipeline, gate, tracker)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", props.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Str("port", props.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
