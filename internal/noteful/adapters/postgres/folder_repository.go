package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/ports/repositories"
	"noteful/pkg/logger"
)

// FolderRepository реализует интерфейс repositories.FolderRepository.
type FolderRepository struct {
	store *namedStore
}

// NewFolderRepository создает новый репозиторий папок.
func NewFolderRepository(pool PgxPoolInterface) repositories.FolderRepository {
	return &FolderRepository{store: newNamedStore(pool, "folders", entities.KindFolder)}
}

func toFolder(rec *namedRecord) *entities.Folder {
	if rec == nil {
		return nil
	}
	return &entities.Folder{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}
}

// List возвращает все папки по имени.
func (r *FolderRepository) List(ctx context.Context) ([]*entities.Folder, error) {
	records, err := r.store.list(ctx)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to list folders", zap.Error(err))
		return nil, err
	}

	folders := make([]*entities.Folder, 0, len(records))
	for _, rec := range records {
		folders = append(folders, toFolder(rec))
	}
	return folders, nil
}

// GetByID получает папку по ID.
func (r *FolderRepository) GetByID(ctx context.Context, id string) (*entities.Folder, error) {
	rec, err := r.store.getByID(ctx, id)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to get folder", zap.String("folderID", id), zap.Error(err))
		return nil, err
	}
	return toFolder(rec), nil
}

// Create сохраняет новую папку.
func (r *FolderRepository) Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("method", "FolderRepository.Create"))

	rec, err := r.store.create(ctx, folder.ID, folder.Name)
	if err != nil {
		logWriteError(ctx, log, "failed to create folder", err)
		return nil, err
	}

	log.Debug(ctx, "folder created", zap.String("folderID", rec.ID))
	return toFolder(rec), nil
}

// Update переименовывает папку. Отсутствие папки - nil без ошибки.
func (r *FolderRepository) Update(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("method", "FolderRepository.Update"))

	rec, err := r.store.update(ctx, folder.ID, folder.Name)
	if err != nil {
		logWriteError(ctx, log, "failed to update folder", err)
		return nil, err
	}
	return toFolder(rec), nil
}

// Delete удаляет папку. Заметки в ней не трогает.
func (r *FolderRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.store.delete(ctx, id)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to delete folder", zap.String("folderID", id), zap.Error(err))
		return false, err
	}
	return deleted, nil
}

// logWriteError пишет конфликт имени как info, остальное как error.
func logWriteError(ctx context.Context, log *logger.Logger, msg string, err error) {
	if errors.Is(err, apperr.ErrUniquenessConflict) {
		log.Info(ctx, err.Error())
		return
	}
	log.Error(ctx, msg, zap.Error(err))
}
