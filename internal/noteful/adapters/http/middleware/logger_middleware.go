// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/pkg/logger"
)

// Ключи и заголовки, которые использует промежуточное ПО.
const (
	RequestContextKey = "requestContext"
	HeaderRequestID   = "X-Request-ID"
)

// NewLoggerMiddleware присваивает запросу идентификатор, кладет в Locals контекст
// с логгером запроса и логирует результат обработки.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		requestID, _ := logger.GetRequestID(requestCtx)

		// Логгер запроса доступен обработчикам через logger.Log(ctx).
		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
		)
		requestCtx = logger.NewContext(requestCtx, log)

		ctx.Locals(RequestContextKey, requestCtx)
		ctx.Set(HeaderRequestID, requestID)

		start := time.Now()

		log.Debug(requestCtx, "Request started", zap.String("ip", ctx.IP()))

		err := ctx.Next()

		logFields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		if err != nil {
			log.Error(requestCtx, "Request failed", append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}
