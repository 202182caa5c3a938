// Package repositories defines repository interfaces for the Noteful service.
package repositories

import (
	"context"

	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/domain/query"
)

// NoteRepository определяет хранилище заметок.
// Отсутствие заметки - nil/false без ошибки.
type NoteRepository interface {
	List(ctx context.Context, filter query.NoteFilter) ([]*entities.Note, error)
	GetByID(ctx context.Context, id string) (*entities.Note, error)
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	// Update целиком заменяет заголовок, текст, папку и метки.
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, id string) (bool, error)

	// DetachFolder снимает ссылку на папку со всех заметок и возвращает их идентификаторы.
	DetachFolder(ctx context.Context, folderID string) ([]string, error)
	// DetachTag убирает метку из наборов всех заметок и возвращает их идентификаторы.
	DetachTag(ctx context.Context, tagID string) ([]string, error)
}
