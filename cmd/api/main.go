package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clientmap-api/internal/auth"
	"clientmap-api/internal/config"
	"clientmap-api/internal/handler"
	"clientmap-api/internal/logger"
	"clientmap-api/internal/mapview"
	"clientmap-api/internal/metrics"
	"clientmap-api/internal/models"
	"clientmap-api/internal/repository"
	"clientmap-api/internal/router"
	"clientmap-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Secrets such as OPERATOR_PASSWORD may live in a local .env file.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("cannot read .env")
	}

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(config.LogLevel, config.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot prepare schema")
	}
	metrics.RegisterStoreGauges(repo)

	composer := mapview.NewComposer(mapview.Options{
		Center:      models.Point{Lat: config.MapCenterLat, Lon: config.MapCenterLon},
		DefaultZoom: config.MapDefaultZoom,
		FocusZoom:   config.MapFocusZoom,
	})
	authenticator := auth.NewAuthenticator(config.OperatorPassword, config.JWTSecret, config.TokenTTL)
	if !authenticator.Enabled() {
		log.Warn().Msg("OPERATOR_PASSWORD is not set, the API is open")
	}

	clientService := service.NewClientService(repo)
	importService := service.NewImportService(repo)
	mapService := service.NewMapService(repo, composer, service.Limits{
		Default: config.MapDefaultLimit,
		Max:     config.MapMaxLimit,
	})

	gin.SetMode(gin.ReleaseMode)
	r := router.New(router.Handlers{
		Clients: handler.NewClientHandler(clientService, importService, config.MaxUploadMB),
		Map:     handler.NewMapHandler(mapService, composer, config.GoogleMapsAPIKey),
		Auth:    handler.NewAuthHandler(authenticator),
	}, authenticator)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
