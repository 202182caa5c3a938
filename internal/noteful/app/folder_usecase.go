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
	ErrFailedListFolders  = "failed to list folders"
	ErrFailedGetFolder    = "failed to get folder"
	ErrFailedCreateFolder = "failed to create folder"
	ErrFailedUpdateFolder = "failed to update folder"
	ErrFailedDeleteFolder = "failed to delete folder"
)

// FolderUseCase представляет собой бизнес-логику работы с папками.
type FolderUseCase struct {
	folders   repositories.FolderRepository
	integrity *IntegrityMaintainer
	validator *validation.Validator
	cache     *entityCache
}

// NewFolderUseCase создает новый экземпляр FolderUseCase.
func NewFolderUseCase(
	folders repositories.FolderRepository,
	integrity *IntegrityMaintainer,
	v *validation.Validator,
	c cache.Cache,
	ttl time.Duration,
) *FolderUseCase {
	return &FolderUseCase{
		folders:   folders,
		integrity: integrity,
		validator: v,
		cache:     newEntityCache(c, ttl),
	}
}

// ListFolders возвращает все папки по имени.
func (uc *FolderUseCase) ListFolders(ctx context.Context) ([]*entities.Folder, error) {
	folders, err := uc.folders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedListFolders, err)
	}
	return folders, nil
}

// GetFolder возвращает папку по ID или nil.
func (uc *FolderUseCase) GetFolder(ctx context.Context, id string) (*entities.Folder, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return nil, err
	}
	id = entities.NormalizeID(id)

	if folder := loadCached[entities.Folder](ctx, uc.cache, entities.KindFolder, id); folder != nil {
		return folder, nil
	}

	folder, err := uc.folders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedGetFolder, err)
	}
	if folder != nil {
		uc.cache.fill(ctx, entities.KindFolder, id, folder)
	}
	return folder, nil
}

// CreateFolder создает папку с уникальным именем.
func (uc *FolderUseCase) CreateFolder(ctx context.Context, req dto.NameRequest) (*entities.Folder, error) {
	if err := uc.validator.Struct(req); err != nil {
		return nil, err
	}

	id, err := entities.NewID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedCreateFolder, err)
	}

	folder, err := uc.folders.Create(ctx, &entities.Folder{ID: id, Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedCreateFolder, err)
	}

	logger.Log(ctx).Info(ctx, "folder created", zap.String("folderID", folder.ID))
	uc.cache.fill(ctx, entities.KindFolder, folder.ID, folder)
	return folder, nil
}

// UpdateFolder переименовывает папку. Возвращает nil, если папки нет.
func (uc *FolderUseCase) UpdateFolder(ctx context.Context, id string, req dto.NameRequest) (*entities.Folder, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return nil, err
	}
	if err := uc.validator.Struct(req); err != nil {
		return nil, err
	}
	id = entities.NormalizeID(id)

	folder, err := uc.folders.Update(ctx, &entities.Folder{ID: id, Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedUpdateFolder, err)
	}

	uc.cache.drop(ctx, entities.KindFolder, id)
	return folder, nil
}

// DeleteFolder удаляет папку и снимает ссылки на нее с заметок.
// При неполной очистке возвращает deleted=true и ошибку apperr.ErrCleanupFailed.
func (uc *FolderUseCase) DeleteFolder(ctx context.Context, id string) (bool, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return false, err
	}

	deleted, err := uc.integrity.DeleteFolder(ctx, entities.NormalizeID(id))
	if err != nil && !deleted {
		return false, fmt.Errorf("%s: %w", ErrFailedDeleteFolder, err)
	}
	return deleted, err
}
