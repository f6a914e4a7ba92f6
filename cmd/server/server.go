package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"registry-hub/admin-api/internal/config"
	employeedomain "registry-hub/admin-api/internal/domain/employee"
	mediadomain "registry-hub/admin-api/internal/domain/media"
	"registry-hub/admin-api/internal/infrastructure/database"
	"registry-hub/admin-api/internal/infrastructure/logger"
	"registry-hub/admin-api/internal/infrastructure/observability"
	employeerepo "registry-hub/admin-api/internal/infrastructure/repository/employee"
	mediarepo "registry-hub/admin-api/internal/infrastructure/repository/media"
	"registry-hub/admin-api/internal/interfaces/httpserver"
)

// Application bundles the long-running pieces of the admin service.
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DSN(),
		DatabaseName:    cfg.DBName,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	// Schema init failure is tolerated so a transiently unavailable database
	// during boot does not take the process down; the missing table then
	// surfaces as store errors on first use.
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Error().Err(err).Msg("migrate database")
	}

	employeeService := employeedomain.NewService(employeerepo.NewRepository(db), log)
	mediaService := mediadomain.NewService(mediarepo.NewRepository(db), log)

	httpServer := httpserver.New(cfg, log, employeeService, mediaService, db)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
