package redis

import (
	"fmt"
	"time"
)

// Значения по умолчанию.
const (
	DefaultPoolSize = 10
	DefaultTimeout  = 3 * time.Second
)

// Config содержит настройки подключения к Redis.
type Config struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Address возвращает адрес host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.PoolSize <= 0 {
		out.PoolSize = DefaultPoolSize
	}
	if out.DialTimeout <= 0 {
		out.DialTimeout = DefaultTimeout
	}
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = DefaultTimeout
	}
	if out.WriteTimeout <= 0 {
		out.WriteTimeout = DefaultTimeout
	}
	return out
}
