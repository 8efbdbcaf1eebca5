package rest

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oyaguma3/portauth-radius-server/pkg/httputil"
	pkglogging "github.com/oyaguma3/portauth-radius-server/pkg/logging"
)

const traceIDHeader = "X-Trace-ID"

// TraceIDMiddleware はX-Trace-IDヘッダからトレースIDを取得する。無ければ生成する。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(httputil.TraceIDKey, traceID)
		c.Header(traceIDHeader, traceID)
		c.Next()
	}
}

// LoggingMiddleware はリクエストログを出力する。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.Info("request completed",
			pkglogging.WithEventID("HTTP_ACCESS"),
			pkglogging.WithTraceID(c.GetString(httputil.TraceIDKey)),
			pkglogging.WithSrcIP(c.ClientIP()),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			pkglogging.WithHTTPStatus(c.Writer.Status()),
			pkglogging.WithLatency(time.Since(start).Milliseconds()),
		)
	}
}

// RecoveryMiddleware はパニックからの復旧を行う。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered",
					"event_id", "HTTP_PANIC",
					"trace_id", c.GetString(httputil.TraceIDKey),
					"error", err,
				)
				httputil.AbortWithError(c, httputil.InternalServerError("An unexpected error occurred"))
			}
		}()
		c.Next()
	}
}
