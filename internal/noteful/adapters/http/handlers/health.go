package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/ports/api"
	"noteful/pkg/logger"
)

// MsgDatabaseUnavailable - ответ проверки, когда база недоступна.
const MsgDatabaseUnavailable = "database unavailable"

// HealthHandler отвечает на проверки живости сервиса.
type HealthHandler struct {
	checker api.HealthChecker
}

// NewHealthHandler создает HealthHandler.
func NewHealthHandler(checker api.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Check обрабатывает GET /healthz.
func (h *HealthHandler) Check(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)

	if err := h.checker.Ping(requestCtx); err != nil {
		logger.Log(requestCtx).Warn(requestCtx, MsgDatabaseUnavailable, zap.Error(err))
		return respond(ctx, fiber.StatusServiceUnavailable, dto.ErrorResponse{
			Status:  fiber.StatusServiceUnavailable,
			Message: MsgDatabaseUnavailable,
		})
	}

	return respond(ctx, fiber.StatusOK, fiber.Map{"status": "ok"})
}
