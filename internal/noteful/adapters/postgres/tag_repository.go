package postgres

import (
	"context"

	"go.uber.org/zap"

	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/ports/repositories"
	"noteful/pkg/logger"
)

// TagRepository реализует интерфейс repositories.TagRepository.
type TagRepository struct {
	store *namedStore
}

// NewTagRepository создает новый репозиторий меток.
func NewTagRepository(pool PgxPoolInterface) repositories.TagRepository {
	return &TagRepository{store: newNamedStore(pool, "tags", entities.KindTag)}
}

func toTag(rec *namedRecord) *entities.Tag {
	if rec == nil {
		return nil
	}
	return &entities.Tag{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}
}

// List возвращает все метки по имени.
func (r *TagRepository) List(ctx context.Context) ([]*entities.Tag, error) {
	records, err := r.store.list(ctx)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to list tags", zap.Error(err))
		return nil, err
	}

	tags := make([]*entities.Tag, 0, len(records))
	for _, rec := range records {
		tags = append(tags, toTag(rec))
	}
	return tags, nil
}

// GetByID получает метку по ID.
func (r *TagRepository) GetByID(ctx context.Context, id string) (*entities.Tag, error) {
	rec, err := r.store.getByID(ctx, id)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to get tag", zap.String("tagID", id), zap.Error(err))
		return nil, err
	}
	return toTag(rec), nil
}

// Create сохраняет новую метку.
func (r *TagRepository) Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", "TagRepository.Create"))

	rec, err := r.store.create(ctx, tag.ID, tag.Name)
	if err != nil {
		logWriteError(ctx, log, "failed to create tag", err)
		return nil, err
	}

	log.Debug(ctx, "tag created", zap.String("tagID", rec.ID))
	return toTag(rec), nil
}

// Update переименовывает метку.
func (r *TagRepository) Update(ctx context.Context, tag *entities.Tag) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", "TagRepository.Update"))

	rec, err := r.store.update(ctx, tag.ID, tag.Name)
	if err != nil {
		logWriteError(ctx, log, "failed to update tag", err)
		return nil, err
	}
	return toTag(rec), nil
}

// Delete удаляет метку. Наборы меток в заметках не трогает.
func (r *TagRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.store.delete(ctx, id)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to delete tag", zap.String("tagID", id), zap.Error(err))
		return false, err
	}
	return deleted, nil
}
