package repositories

import (
	"context"

	"noteful/internal/noteful/domain/entities"
)

// FolderRepository определяет хранилище папок.
// Create и Update возвращают apperr.ErrUniquenessConflict при повторе имени.
type FolderRepository interface {
	List(ctx context.Context) ([]*entities.Folder, error)
	GetByID(ctx context.Context, id string) (*entities.Folder, error)
	Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error)
	Update(ctx context.Context, folder *entities.Folder) (*entities.Folder, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TagRepository определяет хранилище меток.
type TagRepository interface {
	List(ctx context.Context) ([]*entities.Tag, error)
	GetByID(ctx context.Context, id string) (*entities.Tag, error)
	Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error)
	Update(ctx context.Context, tag *entities.Tag) (*entities.Tag, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Transactor выполняет fn в одной транзакции. Репозитории, вызванные с
// контекстом fn, участвуют в этой транзакции.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
