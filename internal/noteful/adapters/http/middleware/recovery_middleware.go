package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/noteful/app/dto"
	"noteful/pkg/logger"
)

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx, ok := ctx.Locals(RequestContextKey).(context.Context)
		if !ok {
			requestCtx = ctx.Context()
		}
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				log.Error(requestCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				err = ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Status:  fiber.StatusInternalServerError,
					Message: "Internal Server Error",
				})
			}
		}()

		return ctx.Next()
	}
}
