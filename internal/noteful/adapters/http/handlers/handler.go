// Package handlers содержит HTTP обработчики ресурсов Noteful.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/noteful/adapters/http/middleware"
	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/domain/entities"
	"noteful/pkg/logger"
)

// Сообщения ответов.
const (
	MsgNotFound            = "Not Found"
	MsgMalformedBody       = "Malformed JSON in request body"
	MsgInternalServerError = "Internal Server Error"
)

// Заголовок Warning ставится, когда ссылки на удаленную папку или метку
// сняты не со всех заметок.
const (
	HeaderWarning            = "Warning"
	WarningCleanupIncomplete = `199 - "reference cleanup incomplete"`
)

// errMalformedBody означает, что тело запроса не удалось разобрать.
var errMalformedBody = errors.New("malformed request body")

// requestContext возвращает контекст запроса, созданный промежуточным ПО.
func requestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(middleware.RequestContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

// pathID возвращает параметр :id, проверив его форму. Ошибка идентификатора
// должна предшествовать любым ошибкам тела запроса.
func pathID(ctx fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if !entities.IsValidID(id) {
		return "", apperr.InvalidIdentifier("id", id)
	}
	return id, nil
}

// bindBody разбирает тело запроса в req. Пустое тело читается как {}.
func bindBody(ctx fiber.Ctx, req any) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.Bind().JSON(req); err != nil {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return nil
}

// respond отправляет JSON с кодом status.
func respond(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// respondCreated отправляет 201 с заголовком Location на новый ресурс.
func respondCreated(ctx fiber.Ctx, id string, body any) error {
	ctx.Set(fiber.HeaderLocation, strings.TrimSuffix(ctx.Path(), "/")+"/"+id)
	return respond(ctx, fiber.StatusCreated, body)
}

// respondDeleted отвечает на успешное удаление. Предупреждение об
// очистке ссылок передается в заголовке Warning.
func respondDeleted(ctx fiber.Ctx, deleted bool, err error) error {
	if err != nil && !(deleted && apperr.IsWarning(err)) {
		return respondError(ctx, err)
	}
	if !deleted {
		return respondError(ctx, apperr.ErrNotFound)
	}
	if err != nil {
		requestCtx := requestContext(ctx)
		logger.Log(requestCtx).Warn(requestCtx, err.Error())
		ctx.Set(HeaderWarning, WarningCleanupIncomplete)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// respondError переводит ошибку в HTTP статус и тело {"status","message"}.
func respondError(ctx fiber.Ctx, err error) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx)

	status, message := fiber.StatusInternalServerError, MsgInternalServerError

	var appErr *apperr.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr) && apperr.IsValidation(appErr):
		status, message = fiber.StatusBadRequest, appErr.Error()
		log.Debug(requestCtx, "request rejected", zap.String("reason", message))
	case errors.Is(err, apperr.ErrNotFound):
		status, message = fiber.StatusNotFound, MsgNotFound
	case errors.Is(err, errMalformedBody):
		status, message = fiber.StatusBadRequest, MsgMalformedBody
		log.Debug(requestCtx, "malformed request body", zap.Error(err))
	case errors.As(err, &fiberErr):
		status, message = fiberErr.Code, fiberErr.Message
	default:
		log.Error(requestCtx, "request failed", zap.Error(err))
	}

	return respond(ctx, status, dto.ErrorResponse{Status: status, Message: message})
}
