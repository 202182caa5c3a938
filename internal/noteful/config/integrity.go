package config

import (
	"fmt"
	"time"
)

// Режимы очистки ссылок после удаления папки или тега.
const (
	CleanupTransactional = "transactional"
	CleanupBestEffort    = "best_effort"
)

// IntegrityConfig задает, как удаление папки/тега сочетается с очисткой заметок.
type IntegrityConfig struct {
	CleanupMode string `yaml:"cleanup_mode" env:"NOTEFUL_CLEANUP_MODE" env-default:"transactional"`
	// Повторы снятия ссылок в режиме best_effort.
	CleanupAttempts int           `yaml:"cleanup_attempts" env:"NOTEFUL_CLEANUP_ATTEMPTS" env-default:"3"`
	CleanupBackoff  time.Duration `yaml:"cleanup_backoff" env:"NOTEFUL_CLEANUP_BACKOFF" env-default:"50ms"`
}

// Transactional сообщает, выполнять ли удаление и очистку в одной транзакции.
func (c *IntegrityConfig) Transactional() bool {
	return c.CleanupMode != CleanupBestEffort
}

func (c *IntegrityConfig) validate() error {
	switch c.CleanupMode {
	case CleanupTransactional, CleanupBestEffort:
		return nil
	default:
		return fmt.Errorf("unknown cleanup mode %q", c.CleanupMode)
	}
}
