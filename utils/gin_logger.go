package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

func requestLogger() *zap.Logger {
	if Logger != nil {
		return Logger
	}
	return zap.NewNop()
}

// GinLogger replaces gin's default console logger with structured zap
// request logs. Each request is tagged with an id, generated when the
// client did not send one.
func GinLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header(requestIDHeader, requestID)

		ctx.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", ctx.ClientIP()),
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}
		requestLogger().Info("request", fields...)
	}
}

// GinRecovery converts handler panics into 500 responses and logs the
// panic value instead of crashing the process.
func GinRecovery() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestLogger().Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", ctx.Request.Method),
					zap.String("path", ctx.Request.URL.Path),
				)
				Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}
