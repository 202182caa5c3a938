package config

import (
	"fmt"
	"net/url"
	"time"

	"noteful/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"NOTEFUL_POSTGRES_HOST" env-default:"0.0.0.0"`
	Port     int    `yaml:"port" env:"NOTEFUL_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"NOTEFUL_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"NOTEFUL_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"NOTEFUL_POSTGRES_DB" env-default:"noteful"`
	SSLMode  string `yaml:"ssl_mode" env:"NOTEFUL_POSTGRES_SSL_MODE" env-default:"disable"`
	MinConn  int    `yaml:"min_conn" env:"NOTEFUL_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"NOTEFUL_POSTGRES_MAX_CONN" env-default:"10"`

	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time" env:"NOTEFUL_POSTGRES_MAX_CONN_IDLE_TIME" env-default:"5m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"NOTEFUL_POSTGRES_HEALTH_CHECK_PERIOD" env-default:"1m"`
}

// PoolConfig переводит настройки в параметры пула соединений.
func (p *PostgresConfig) PoolConfig() postgres.PoolConfig {
	return postgres.PoolConfig{
		DSN:               p.GetDSN(),
		MinConns:          int32(p.MinConn), //nolint:gosec
		MaxConns:          int32(p.MaxConn), //nolint:gosec
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
	}
}

// GetDSN возвращает строку подключения к Postgres.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// GetConnectionURL возвращает URL подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Database,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}

// MigrationsConfig указывает каталог с SQL миграциями.
type MigrationsConfig struct {
	Dir string `yaml:"dir" env:"NOTEFUL_MIGRATIONS_DIR" env-default:"migrations/noteful"`
}
