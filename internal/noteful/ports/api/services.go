// Package api определяет операции, которые сервис предоставляет транспортному слою.
package api

import (
	"context"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/entities"
)

// NoteService - операции над заметками. nil/false означают отсутствие сущности.
type NoteService interface {
	ListNotes(ctx context.Context, q dto.NoteQuery) ([]*entities.Note, error)
	GetNote(ctx context.Context, id string) (*entities.Note, error)
	CreateNote(ctx context.Context, req dto.NoteRequest) (*entities.Note, error)
	UpdateNote(ctx context.Context, id string, req dto.NoteRequest) (*entities.Note, error)
	DeleteNote(ctx context.Context, id string) (bool, error)
}

// FolderService - операции над папками.
type FolderService interface {
	ListFolders(ctx context.Context) ([]*entities.Folder, error)
	GetFolder(ctx context.Context, id string) (*entities.Folder, error)
	CreateFolder(ctx context.Context, req dto.NameRequest) (*entities.Folder, error)
	UpdateFolder(ctx context.Context, id string, req dto.NameRequest) (*entities.Folder, error)
	// DeleteFolder может вернуть deleted=true вместе с ошибкой apperr.ErrCleanupFailed.
	DeleteFolder(ctx context.Context, id string) (bool, error)
}

// TagService - операции над метками.
type TagService interface {
	ListTags(ctx context.Context) ([]*entities.Tag, error)
	GetTag(ctx context.Context, id string) (*entities.Tag, error)
	CreateTag(ctx context.Context, req dto.NameRequest) (*entities.Tag, error)
	UpdateTag(ctx context.Context, id string, req dto.NameRequest) (*entities.Tag, error)
	DeleteTag(ctx context.Context, id string) (bool, error)
}

// HealthChecker проверяет доступность зависимостей.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
