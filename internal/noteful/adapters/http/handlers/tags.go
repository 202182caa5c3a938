package handlers

import (
	"github.com/gofiber/fiber/v3"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/ports/api"
)

// TagHandler обработчик HTTP-запросов для работы с метками.
type TagHandler struct {
	tags api.TagService
}

// NewTagHandler создает новый экземпляр обработчика меток.
func NewTagHandler(tags api.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

// ListTags обрабатывает GET /api/tags.
func (h *TagHandler) ListTags(ctx fiber.Ctx) error {
	tags, err := h.tags.ListTags(requestContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return respond(ctx, fiber.StatusOK, serializeAll(tags, serializeTag))
}

// GetTag обрабатывает GET /api/tags/:id.
func (h *TagHandler) GetTag(ctx fiber.Ctx) error {
	tag, err := h.tags.GetTag(requestContext(ctx), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	if tag == nil {
		return respondError(ctx, apperr.ErrNotFound)
	}
	return respond(ctx, fiber.StatusOK, serializeTag(tag))
}

// CreateTag обрабатывает POST /api/tags.
func (h *TagHandler) CreateTag(ctx fiber.Ctx) error {
	var req dto.NameRequest
	if err := bindBody(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	tag, err := h.tags.CreateTag(requestContext(ctx), req)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, tag.ID, serializeTag(tag))
}

// UpdateTag обрабатывает PUT /api/tags/:id.
func (h *TagHandler) UpdateTag(ctx fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req dto.NameRequest
	if err := bindBody(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	tag, err := h.tags.UpdateTag(requestContext(ctx), id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	if tag == nil {
		return respondError(ctx, apperr.ErrNotFound)
	}
	return respond(ctx, fiber.StatusOK, serializeTag(tag))
}

// DeleteTag обрабатывает DELETE /api/tags/:id. Метка убирается из наборов меток заметок.
func (h *TagHandler) DeleteTag(ctx fiber.Ctx) error {
	deleted, err := h.tags.DeleteTag(requestContext(ctx), ctx.Params("id"))
	return respondDeleted(ctx, deleted, err)
}
