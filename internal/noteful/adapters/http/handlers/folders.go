package handlers

import (
	"github.com/gofiber/fiber/v3"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/ports/api"
)

// FolderHandler обработчик HTTP-запросов для работы с папками.
type FolderHandler struct {
	folders api.FolderService
}

// NewFolderHandler создает новый экземпляр обработчика папок.
func NewFolderHandler(folders api.FolderService) *FolderHandler {
	return &FolderHandler{folders: folders}
}

// ListFolders обрабатывает GET /api/folders.
func (h *FolderHandler) ListFolders(ctx fiber.Ctx) error {
	folders, err := h.folders.ListFolders(requestContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return respond(ctx, fiber.StatusOK, serializeAll(folders, serializeFolder))
}

// GetFolder обрабатывает GET /api/folders/:id.
func (h *FolderHandler) GetFolder(ctx fiber.Ctx) error {
	folder, err := h.folders.GetFolder(requestContext(ctx), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	if folder == nil {
		return respondError(ctx, apperr.ErrNotFound)
	}
	return respond(ctx, fiber.StatusOK, serializeFolder(folder))
}

// CreateFolder обрабатывает POST /api/folders.
func (h *FolderHandler) CreateFolder(ctx fiber.Ctx) error {
	var req dto.NameRequest
	if err := bindBody(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	folder, err := h.folders.CreateFolder(requestContext(ctx), req)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, folder.ID, serializeFolder(folder))
}

// UpdateFolder обрабатывает PUT /api/folders/:id.
func (h *FolderHandler) UpdateFolder(ctx fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req dto.NameRequest
	if err := bindBody(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	folder, err := h.folders.UpdateFolder(requestContext(ctx), id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	if folder == nil {
		return respondError(ctx, apperr.ErrNotFound)
	}
	return respond(ctx, fiber.StatusOK, serializeFolder(folder))
}

// DeleteFolder обрабатывает DELETE /api/folders/:id. Заметки в папке остаются без папки.
func (h *FolderHandler) DeleteFolder(ctx fiber.Ctx) error {
	deleted, err := h.folders.DeleteFolder(requestContext(ctx), ctx.Params("id"))
	return respondDeleted(ctx, deleted, err)
}
