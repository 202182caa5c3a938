package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/ports/api"
	"noteful/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerCreateNote = "handling create note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"
)

// NoteHandler обработчик HTTP-запросов для работы с заметками.
type NoteHandler struct {
	notes api.NoteService
}

// NewNoteHandler создает новый экземпляр обработчика заметок.
func NewNoteHandler(notes api.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// ListNotes обрабатывает GET /api/notes?searchTerm=&folderId=&tagId=.
func (h *NoteHandler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListNotes)

	notes, err := h.notes.ListNotes(requestCtx, dto.NoteQuery{
		SearchTerm: ctx.Query("searchTerm"),
		FolderID:   ctx.Query("folderId"),
		TagID:      ctx.Query("tagId"),
	})
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, fiber.StatusOK, serializeAll(notes, serializeNote))
}

// GetNote обрабатывает GET /api/notes/:id.
func (h *NoteHandler) GetNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	id := ctx.Params("id")
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetNote, zap.String("noteID", id))

	note, err := h.notes.GetNote(requestCtx, id)
	if err != nil {
		return respondError(ctx, err)
	}
	if note == nil {
		return respondError(ctx, apperr.ErrNotFound)
	}

	return respond(ctx, fiber.StatusOK, serializeNote(note))
}

// CreateNote обрабатывает POST /api/notes.
func (h *NoteHandler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerCreateNote)

	var req dto.NoteRequest
	if err := bindBody(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	note, err := h.notes.CreateNote(requestCtx, req)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, note.ID, serializeNote(note))
}

// UpdateNote обрабатывает PUT /api/notes/:id.
func (h *NoteHandler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerUpdateNote, zap.String("noteID", ctx.Params("id")))

	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req dto.NoteRequest
	if err := bindBody(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	note, err := h.notes.UpdateNote(requestCtx, id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	if note == nil {
		return respondError(ctx, apperr.ErrNotFound)
	}

	return respond(ctx, fiber.StatusOK, serializeNote(note))
}

// DeleteNote обрабатывает DELETE /api/notes/:id.
func (h *NoteHandler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	id := ctx.Params("id")
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerDeleteNote, zap.String("noteID", id))

	deleted, err := h.notes.DeleteNote(requestCtx, id)
	return respondDeleted(ctx, deleted, err)
}
