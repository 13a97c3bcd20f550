package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumeapi/internal/advisor"
	"resumeapi/internal/career"
	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/database/migration"
	"resumeapi/internal/document"
	handlers "resumeapi/internal/http/handler"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/logger"
	"resumeapi/internal/metrics"
	"resumeapi/internal/otel"
	"resumeapi/internal/repository/postgres"
	"resumeapi/internal/resume"
	"resumeapi/internal/service"
	"resumeapi/internal/storage"
)

// @title Resume API
// @version 1.0
// @description Heuristic résumé parsing, career suggestions and AI guidance.
// @BasePath /
func main() {
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Location: loc})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	parser, err := resume.New(resume.Config{
		NameScanLines:    cfg.Parser.NameScanLines,
		MinSectionLength: cfg.Parser.MinSectionLength,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build resume parser")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	analysisMetrics, err := metrics.NewAnalysis(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register analysis metrics")
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register http metrics")
	}

	opts := service.Options{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		Metrics:        analysisMetrics,
	}
	// Guidance is optional; without a key every analysis still completes.
	if cfg.Advisor.APIKey != "" {
		gemini, err := advisor.NewGemini(ctx, advisor.Config{
			APIKey:  cfg.Advisor.APIKey,
			Model:   cfg.Advisor.Model,
			Timeout: time.Duration(cfg.Advisor.TimeoutSec) * time.Second,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize gemini advisor")
		}
		opts.Advisor = gemini
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, AI guidance disabled")
	}

	reader := document.NewReader()
	resumeRepo := postgres.NewResumePostgres(db)
	resumeSvc := service.NewResumeService(objStore, resumeRepo, parser, reader, career.NewTable(nil), opts)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Room for multipart framing around the largest accepted file.
		BodyLimit: int(cfg.MaxUploadBytes()) + 1<<20,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:             db,
		Storage:        objStore,
		Service:        resumeSvc,
		Formats:        reader.SupportedFormats(),
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})

	handlers.RegisterSwagger(app, cfg.AppHost)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
		}
	}()

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("host", cfg.AppHost).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error().Err(err).Msg("tracing shutdown")
	}
}
