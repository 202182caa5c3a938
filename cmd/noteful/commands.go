package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cacheadapter "noteful/internal/noteful/adapters/cache"
	"noteful/internal/noteful/adapters/grpc"
	httpadapter "noteful/internal/noteful/adapters/http"
	"noteful/internal/noteful/adapters/postgres"
	"noteful/internal/noteful/app"
	"noteful/internal/noteful/config"
	"noteful/internal/noteful/db"
	"noteful/internal/noteful/domain/validation"
	"noteful/internal/noteful/ports/cache"
	"noteful/internal/noteful/seed"
	"noteful/pkg/logger"
	"noteful/pkg/shutdown"
)

// Константы для сообщений об ошибках.
const (
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to initialize cache"
	ErrStartGRPC            = "failed to start gRPC server"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrMigrate              = "failed to apply migrations"
	ErrLoadSeed             = "failed to load seed data"
	ErrSeed                 = "failed to seed database"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "noteful service started"
	LogServiceShutdownDone = "noteful service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing cache connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogStoppingGRPC        = "stopping gRPC server"
	LogInitRepo            = "initializing repositories"
	LogInitCache           = "initializing cache"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStartingGRPC        = "starting gRPC server"
	LogMigrationsApplied   = "migrations applied"
	LogSeedCompleted       = "database seeded"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "noteful",
		Usage:  "Notes, folders and tags REST API",
		Action: runServe,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "Path to .env file loaded before process environment",
				Value:   config.DefaultEnvFile,
				Sources: cli.EnvVars(EnvEnvFile),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run HTTP API and gRPC health servers",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations and exit",
				Action: runMigrate,
			},
			{
				Name:   "seed",
				Usage:  "Load seed data into the database",
				Action: runSeed,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "YAML seed file (embedded data when empty)",
					},
					&cli.BoolFlag{
						Name:  "drop",
						Usage: "Truncate notes, folders and tags before seeding",
					},
				},
			},
		},
	}
}

// loadConfig загружает конфигурацию и заменяет глобальный логгер настроенным.
func loadConfig(ctx context.Context, cmd *cli.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(ctx, cmd.String("env-file"))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}

	log, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrInitLoggerWithConfig, err)
	}
	logger.SetGlobalLogger(log)

	return cfg, log, nil
}

func newCache(ctx context.Context, cfg *config.RedisConfig) (cache.Cache, error) {
	if !cfg.Enabled {
		return cacheadapter.NewNop(), nil
	}
	return cacheadapter.NewRedisCache(ctx, cfg)
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	database, err := db.New(ctx, &cfg.Postgres, cfg.Migrations.Dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitDB, err)
	}

	log.Info(ctx, LogServiceStarted,
		zap.String("environment", string(cfg.Logging.GetEnvironment())),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("cleanup_mode", cfg.Integrity.CleanupMode),
		zap.String("startup_time", time.Now().Format(time.RFC3339)))

	log.Info(ctx, LogInitCache, zap.Bool("enabled", cfg.Redis.Enabled))
	entityCache, err := newCache(ctx, &cfg.Redis)
	if err != nil {
		database.Close(ctx)
		return fmt.Errorf("%s: %w", ErrInitCache, err)
	}

	log.Info(ctx, LogInitRepo)
	repoFactory := postgres.NewRepositoryFactory(database.Pool())
	noteRepo := repoFactory.NoteRepository()
	folderRepo := repoFactory.FolderRepository()
	tagRepo := repoFactory.TagRepository()

	log.Info(ctx, LogInitUseCases)
	validator := validation.New()
	integrity := app.NewIntegrityMaintainer(noteRepo, folderRepo, tagRepo,
		repoFactory.Transactor(), cfg.Integrity, entityCache)

	services := httpadapter.Services{
		Notes:   app.NewNoteUseCase(noteRepo, validator, entityCache, cfg.Redis.TTL),
		Folders: app.NewFolderUseCase(folderRepo, integrity, validator, entityCache, cfg.Redis.TTL),
		Tags:    app.NewTagUseCase(tagRepo, integrity, validator, entityCache, cfg.Redis.TTL),
		Health:  database,
	}

	log.Info(ctx, LogInitHTTPServer)
	httpApp := httpadapter.NewApp(&cfg.HTTP, services)

	log.Info(ctx, LogStartingGRPC)
	grpcServer := grpc.New(&cfg.GRPC)
	if err := grpcServer.Start(ctx); err != nil {
		_ = entityCache.Close()
		database.Close(ctx)
		return fmt.Errorf("%s: %w", ErrStartGRPC, err)
	}
	grpcServer.SetServing(true)

	log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
	go func() {
		if err := httpApp.Listen(cfg.HTTP.GetAddress()); err != nil {
			log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
		}
	}()

	shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
		// Остановка gRPC сервера.
		func(ctx context.Context) error {
			log.Info(ctx, LogStoppingGRPC)
			grpcServer.Stop(ctx)
			return nil
		},
		// HTTP сервер останавливается раньше, чем закрывается пул соединений.
		func(ctx context.Context) error {
			log.Info(ctx, LogStoppingHTTP)
			err := httpApp.ShutdownWithContext(ctx)

			log.Info(ctx, LogClosingDB)
			database.Close(ctx)
			return err
		},
		// Закрытие Redis соединения.
		func(ctx context.Context) error {
			log.Info(ctx, LogClosingCache)
			return entityCache.Close()
		},
	)

	log.Info(ctx, LogServiceShutdownDone)
	return nil
}

func runMigrate(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	if err := db.Migrate(ctx, &cfg.Postgres, cfg.Migrations.Dir); err != nil {
		return fmt.Errorf("%s: %w", ErrMigrate, err)
	}

	log.Info(ctx, LogMigrationsApplied, zap.String("dir", cfg.Migrations.Dir))
	return nil
}

func runSeed(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	data, err := seed.Load(cmd.String("file"))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrLoadSeed, err)
	}

	database, err := db.New(ctx, &cfg.Postgres, cfg.Migrations.Dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitDB, err)
	}
	defer database.Close(ctx)

	if err := postgres.NewRepositoryFactory(database.Pool()).Seeder().Seed(ctx, data, cmd.Bool("drop")); err != nil {
		return fmt.Errorf("%s: %w", ErrSeed, err)
	}

	log.Info(ctx, LogSeedCompleted,
		zap.Int("folders", len(data.Folders)),
		zap.Int("tags", len(data.Tags)),
		zap.Int("notes", len(data.Notes)))
	return nil
}
