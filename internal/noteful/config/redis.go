package config

import (
	"time"

	"noteful/pkg/db/redis"
)

// RedisConfig представляет конфигурацию кэша.
type RedisConfig struct {
	Enabled      bool          `yaml:"enabled" env:"NOTEFUL_REDIS_ENABLED" env-default:"false"`
	Host         string        `yaml:"host" env:"NOTEFUL_REDIS_HOST" env-default:"localhost"`
	Port         int           `yaml:"port" env:"NOTEFUL_REDIS_PORT" env-default:"6379"`
	Password     string        `yaml:"password" env:"NOTEFUL_REDIS_PASSWORD" env-default:""`
	DB           int           `yaml:"db" env:"NOTEFUL_REDIS_DB" env-default:"0"`
	PoolSize     int           `yaml:"pool_size" env:"NOTEFUL_REDIS_POOL_SIZE" env-default:"10"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"NOTEFUL_REDIS_DIAL_TIMEOUT" env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"NOTEFUL_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"NOTEFUL_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	TTL          time.Duration `yaml:"ttl" env:"NOTEFUL_REDIS_TTL" env-default:"10m"`
}

// ClientConfig преобразует настройки в конфигурацию клиента.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:         c.Host,
		Port:         c.Port,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     c.PoolSize,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
}
