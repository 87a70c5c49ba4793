package main

import (
	"context"
	"os"
	"time"

	"financial-health/internal/api"
	"financial-health/internal/config"
	"financial-health/internal/logging"
	"financial-health/internal/pipeline"
	"financial-health/internal/report"
	"financial-health/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

func main() {
	// Environment first: .env may carry CONFIG_PATH and DATABASE_URL.
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open store")
	}
	defer repo.Close()

	p := pipeline.FromConfig(cfg)
	if p.Loader.Cache != nil {
		stop := make(chan struct{})
		defer close(stop)
		go p.Loader.Cache.Run(cfg.Upload.CacheTTL, stop)
	}

	router := api.NewRouter(api.Deps{
		Store:             repo,
		Pipeline:          p,
		Benchmarks:        cfg.Benchmarks(),
		Renderer:          report.NewPDFRenderer(cfg.Report.UnicodeFont),
		CORSOrigins:       cfg.Server.CORSOrigins,
		MaxUploadBytes:    cfg.Upload.MaxBytes,
		ExtractionTimeout: cfg.Upload.ExtractionTimeout,
		UploadRPS:         cfg.Upload.RateLimit,
		UploadBurst:       cfg.Upload.RateBurst,
	})

	addr := ":" + cfg.Server.Port
	log.Info().
		Str("addr", addr).
		Str("env", cfg.Server.Env).
		Str("storage", cfg.Storage.Driver).
		Int("forecast_horizon", cfg.Forecast.HorizonMonths).
		Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func openStore(cfg *config.Config) (store.Repository, error) {
	if cfg.Storage.Driver != "postgres" {
		return store.NewMemory(), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return store.OpenPostgres(ctx, cfg.Storage.DatabaseURL)
}
