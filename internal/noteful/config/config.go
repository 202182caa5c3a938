// Package config содержит конфигурацию сервиса Noteful.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"noteful/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig    = "loading noteful configuration"
	LogConfigLoaded     = "configuration loaded successfully"
	LogEnvFileLoaded    = "environment file loaded"
	ErrFailedLoadConfig = "failed to load configuration"
	ErrFailedLoadEnv    = "failed to load environment file"
	ErrInvalidConfig    = "invalid configuration"
)

// DefaultEnvFile - файл окружения, который читается до переменных процесса, если существует.
const DefaultEnvFile = ".env"

// Config представляет полную конфигурацию сервиса.
type Config struct {
	Postgres   PostgresConfig   `yaml:"postgres"`
	HTTP       HTTPConfig       `yaml:"http"`
	GRPC       GRPCConfig       `yaml:"grpc"`
	Redis      RedisConfig      `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	Integrity  IntegrityConfig  `yaml:"integrity"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// Load загружает конфигурацию из envFile (если он есть) и переменных окружения.
// Переменные процесса имеют приоритет над файлом.
func Load(ctx context.Context, envFile string) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Error(ctx, ErrFailedLoadEnv, zap.String("path", envFile), zap.Error(err))
				return nil, fmt.Errorf("%s: %w", ErrFailedLoadEnv, err)
			}
		} else {
			log.Info(ctx, LogEnvFileLoaded, zap.String("path", envFile))
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Integrity.validate(); err != nil {
		log.Error(ctx, ErrInvalidConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("grpc_address", cfg.GRPC.GetAddress()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.String("cleanup_mode", cfg.Integrity.CleanupMode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return &cfg, nil
}
