package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/domain/validation"
	"noteful/internal/noteful/ports/cache"
	"noteful/internal/noteful/ports/repositories"
	"noteful/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrFailedListTags  = "failed to list tags"
	ErrFailedGetTag    = "failed to get tag"
	ErrFailedCreateTag = "failed to create tag"
	ErrFailedUpdateTag = "failed to update tag"
	ErrFailedDeleteTag = "failed to delete tag"
)

// TagUseCase представляет собой бизнес-логику работы с метками.
type TagUseCase struct {
	tags      repositories.TagRepository
	integrity *IntegrityMaintainer
	validator *validation.Validator
	cache     *entityCache
}

// NewTagUseCase создает новый экземпляр TagUseCase.
func NewTagUseCase(
	tags repositories.TagRepository,
	integrity *IntegrityMaintainer,
	v *validation.Validator,
	c cache.Cache,
	ttl time.Duration,
) *TagUseCase {
	return &TagUseCase{
		tags:      tags,
		integrity: integrity,
		validator: v,
		cache:     newEntityCache(c, ttl),
	}
}

// ListTags возвращает все метки по имени.
func (uc *TagUseCase) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	tags, err := uc.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedListTags, err)
	}
	return tags, nil
}

// GetTag возвращает метку по ID или nil.
func (uc *TagUseCase) GetTag(ctx context.Context, id string) (*entities.Tag, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return nil, err
	}
	id = entities.NormalizeID(id)

	if tag := loadCached[entities.Tag](ctx, uc.cache, entities.KindTag, id); tag != nil {
		return tag, nil
	}

	tag, err := uc.tags.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedGetTag, err)
	}
	if tag != nil {
		uc.cache.fill(ctx, entities.KindTag, id, tag)
	}
	return tag, nil
}

// CreateTag создает метку с уникальным именем.
func (uc *TagUseCase) CreateTag(ctx context.Context, req dto.NameRequest) (*entities.Tag, error) {
	if err := uc.validator.Struct(req); err != nil {
		return nil, err
	}

	id, err := entities.NewID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedCreateTag, err)
	}

	tag, err := uc.tags.Create(ctx, &entities.Tag{ID: id, Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedCreateTag, err)
	}

	logger.Log(ctx).Info(ctx, "tag created", zap.String("tagID", tag.ID))
	uc.cache.fill(ctx, entities.KindTag, tag.ID, tag)
	return tag, nil
}

// UpdateTag переименовывает метку. Возвращает nil, если метки нет.
func (uc *TagUseCase) UpdateTag(ctx context.Context, id string, req dto.NameRequest) (*entities.Tag, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return nil, err
	}
	if err := uc.validator.Struct(req); err != nil {
		return nil, err
	}
	id = entities.NormalizeID(id)

	tag, err := uc.tags.Update(ctx, &entities.Tag{ID: id, Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedUpdateTag, err)
	}

	uc.cache.drop(ctx, entities.KindTag, id)
	return tag, nil
}

// DeleteTag удаляет метку и убирает ее из наборов меток заметок.
// При неполной очистке возвращает deleted=true и ошибку apperr.ErrCleanupFailed.
func (uc *TagUseCase) DeleteTag(ctx context.Context, id string) (bool, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return false, err
	}

	deleted, err := uc.integrity.DeleteTag(ctx, entities.NormalizeID(id))
	if err != nil && !deleted {
		return false, fmt.Errorf("%s: %w", ErrFailedDeleteTag, err)
	}
	return deleted, err
}
