package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter はミドルウェアとルーティングを設定したgin.Engineを返す。
// metricsHandlerがnilの場合は/metricsを登録しない。
func NewRouter(h *Handler, metricsHandler http.Handler) *gin.Engine {
	engine := gin.New()
	engine.Use(TraceIDMiddleware(), RecoveryMiddleware(), LoggingMiddleware())

	engine.GET("/health", h.HandleHealth)
	if metricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// rlm_rest: authorize / post-auth / accounting
	engine.POST("/radius/:phase", h.HandleRadius)
	return engine
}
