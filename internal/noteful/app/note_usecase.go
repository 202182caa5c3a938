// Package app implements application business logic for the Noteful service.
package app

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/domain/query"
	"noteful/internal/noteful/domain/validation"
	"noteful/internal/noteful/ports/cache"
	"noteful/internal/noteful/ports/repositories"
	"noteful/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrFailedListNotes  = "failed to list notes"
	ErrFailedGetNote    = "failed to get note"
	ErrFailedCreateNote = "failed to create note"
	ErrFailedUpdateNote = "failed to update note"
	ErrFailedDeleteNote = "failed to delete note"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	notes     repositories.NoteRepository
	validator *validation.Validator
	cache     *entityCache
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(notes repositories.NoteRepository, v *validation.Validator, c cache.Cache, ttl time.Duration) *NoteUseCase {
	return &NoteUseCase{
		notes:     notes,
		validator: v,
		cache:     newEntityCache(c, ttl),
	}
}

// ListNotes возвращает заметки, подходящие под все заданные условия.
func (uc *NoteUseCase) ListNotes(ctx context.Context, q dto.NoteQuery) ([]*entities.Note, error) {
	if !utf8.ValidString(q.SearchTerm) {
		return nil, apperr.InvalidParameter("searchTerm")
	}
	if q.FolderID != "" {
		if err := uc.validator.ID("folderId", q.FolderID); err != nil {
			return nil, err
		}
	}
	if q.TagID != "" {
		if err := uc.validator.ID("tagId", q.TagID); err != nil {
			return nil, err
		}
	}

	filter := query.NewNoteFilter(q.SearchTerm, entities.NormalizeID(q.FolderID), entities.NormalizeID(q.TagID))
	notes, err := uc.notes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedListNotes, err)
	}
	return notes, nil
}

// GetNote возвращает заметку по ID или nil, если ее нет.
func (uc *NoteUseCase) GetNote(ctx context.Context, id string) (*entities.Note, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return nil, err
	}
	id = entities.NormalizeID(id)

	if note := loadCached[entities.Note](ctx, uc.cache, entities.KindNote, id); note != nil {
		return note, nil
	}

	note, err := uc.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedGetNote, err)
	}
	if note != nil {
		uc.cache.fill(ctx, entities.KindNote, id, note)
	}
	return note, nil
}

// CreateNote создает заметку.
func (uc *NoteUseCase) CreateNote(ctx context.Context, req dto.NoteRequest) (*entities.Note, error) {
	if err := uc.validator.Struct(req); err != nil {
		return nil, err
	}

	note, err := entities.NewNote(req.Title, req.Content, folderRef(req.FolderID), normalizeIDs(req.Tags))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedCreateNote, err)
	}

	created, err := uc.notes.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedCreateNote, err)
	}

	logger.Log(ctx).Info(ctx, "note created", zap.String("noteID", created.ID))
	uc.cache.fill(ctx, entities.KindNote, created.ID, created)
	return created, nil
}

// UpdateNote целиком заменяет заголовок, текст, папку и метки заметки.
// Возвращает nil, если заметки нет.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, id string, req dto.NoteRequest) (*entities.Note, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return nil, err
	}
	if err := uc.validator.Struct(req); err != nil {
		return nil, err
	}
	id = entities.NormalizeID(id)

	updated, err := uc.notes.Update(ctx, &entities.Note{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		FolderID: folderRef(req.FolderID),
		Tags:     entities.NormalizeTags(normalizeIDs(req.Tags)),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedUpdateNote, err)
	}

	uc.cache.drop(ctx, entities.KindNote, id)
	return updated, nil
}

// DeleteNote удаляет заметку и сообщает, существовала ли она.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id string) (bool, error) {
	if err := uc.validator.ID("id", id); err != nil {
		return false, err
	}
	id = entities.NormalizeID(id)

	deleted, err := uc.notes.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrFailedDeleteNote, err)
	}

	uc.cache.drop(ctx, entities.KindNote, id)
	return deleted, nil
}

// folderRef переводит пустую ссылку на папку в ее отсутствие.
func folderRef(folderID string) *string {
	if folderID == "" {
		return nil
	}
	id := entities.NormalizeID(folderID)
	return &id
}

func normalizeIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = entities.NormalizeID(id)
	}
	return out
}
