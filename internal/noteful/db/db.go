// Package db предоставляет функционал для работы с базой данных сервиса Noteful.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"noteful/internal/noteful/config"
	"noteful/pkg/db/postgres"
	"noteful/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogDBInitializing    = "initializing noteful database"
	LogDBInitialized     = "noteful database initialized successfully"
	LogMigrationStarting = "starting database migrations for noteful service"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations      = "failed to apply noteful database migrations"
	ErrDBConnection      = "failed to connect to noteful database"
	ErrGetPath           = "failed to get path"
	ErrDBCheckConnection = "error checking the database connection"
)

const filePrefix = "file://"

// DB представляет соединение с базой данных сервиса.
type DB struct {
	database *postgres.Database
}

// MigrationsSource переводит каталог миграций в URL источника golang-migrate.
func MigrationsSource(migrationsDir string) (string, error) {
	if filepath.IsAbs(migrationsDir) {
		return filePrefix + migrationsDir, nil
	}
	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetPath, err)
	}
	return filePrefix + absPath, nil
}

// Migrate применяет миграции из migrationsDir.
func Migrate(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string) error {
	source, err := MigrationsSource(migrationsDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	logger.Log(ctx).Info(ctx, LogMigrationStarting, zap.String("migrations_path", source))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), source); err != nil {
		return fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}
	return nil
}

// Connect открывает пул соединений без применения миграций.
func Connect(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	logger.Log(ctx).Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	database, err := postgres.New(ctx, cfg.PoolConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	logger.Log(ctx).Info(ctx, LogDBInitialized)
	return &DB{database: database}, nil
}

// New инициализирует соединение с базой данных, предварительно применив миграции.
func New(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string) (*DB, error) {
	if err := Migrate(ctx, cfg, migrationsDir); err != nil {
		return nil, err
	}
	return Connect(ctx, cfg)
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.database.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDBCheckConnection, err)
	}
	return nil
}
