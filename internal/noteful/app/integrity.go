package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"noteful/internal/noteful/config"
	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/ports/cache"
	"noteful/internal/noteful/ports/repositories"
	"noteful/internal/noteful/resilience"
	"noteful/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogReferencesDetached = "references detached from notes"
	LogCleanupFailed      = "entity deleted but reference cleanup failed"
)

// IntegrityMaintainer удаляет папки и метки вместе со ссылками на них из заметок.
// Заметки при этом никогда не удаляются.
type IntegrityMaintainer struct {
	notes         repositories.NoteRepository
	folders       repositories.FolderRepository
	tags          repositories.TagRepository
	tx            repositories.Transactor
	transactional bool
	retry         *resilience.Retry
	cache         *entityCache
}

// NewIntegrityMaintainer создает IntegrityMaintainer с режимом очистки из cfg.
func NewIntegrityMaintainer(
	notes repositories.NoteRepository,
	folders repositories.FolderRepository,
	tags repositories.TagRepository,
	tx repositories.Transactor,
	cfg config.IntegrityConfig,
	c cache.Cache,
) *IntegrityMaintainer {
	return &IntegrityMaintainer{
		notes:         notes,
		folders:       folders,
		tags:          tags,
		tx:            tx,
		transactional: cfg.Transactional(),
		retry: resilience.NewRetry("reference-cleanup", resilience.RetryConfig{
			MaxAttempts:    cfg.CleanupAttempts,
			InitialBackoff: cfg.CleanupBackoff,
			MaxBackoff:     maxCleanupBackoff,
			BackoffFactor:  2,
		}),
		cache: newEntityCache(c, 0),
	}
}

// DeleteFolder удаляет папку и снимает ее со всех заметок.
func (m *IntegrityMaintainer) DeleteFolder(ctx context.Context, id string) (bool, error) {
	return m.deleteWithCleanup(ctx, entities.KindFolder, id, m.folders.Delete, m.notes.DetachFolder)
}

// DeleteTag удаляет метку и убирает ее из наборов меток всех заметок.
func (m *IntegrityMaintainer) DeleteTag(ctx context.Context, id string) (bool, error) {
	return m.deleteWithCleanup(ctx, entities.KindTag, id, m.tags.Delete, m.notes.DetachTag)
}

const maxCleanupBackoff = time.Second

type deleteFunc func(ctx context.Context, id string) (bool, error)

type detachFunc func(ctx context.Context, id string) ([]string, error)

func (m *IntegrityMaintainer) deleteWithCleanup(ctx context.Context, kind, id string, del deleteFunc, detach detachFunc) (bool, error) {
	log := logger.Log(ctx).With(zap.String("entity", kind), zap.String("id", id))

	var (
		deleted  bool
		affected []string
		err      error
	)

	if m.transactional {
		err = m.tx.WithinTx(ctx, func(ctx context.Context) error {
			var txErr error
			if deleted, txErr = del(ctx, id); txErr != nil || !deleted {
				return txErr
			}
			affected, txErr = detach(ctx, id)
			return txErr
		})
		if err != nil {
			return false, err
		}
	} else {
		if deleted, err = del(ctx, id); err != nil {
			return false, err
		}
		if deleted {
			err = m.retry.Execute(ctx, func(ctx context.Context) error {
				var detachErr error
				affected, detachErr = detach(ctx, id)
				return detachErr
			})
		}
	}

	if !deleted {
		return false, nil
	}

	m.cache.drop(ctx, kind, id)

	if err != nil {
		log.Warn(ctx, LogCleanupFailed, zap.Error(err))
		return true, apperr.CleanupFailed(kind, id, err)
	}

	m.cache.drop(ctx, entities.KindNote, affected...)
	log.Info(ctx, LogReferencesDetached, zap.Int("notes", len(affected)))
	return true, nil
}
