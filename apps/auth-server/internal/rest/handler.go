// Package rest はFreeRADIUS rlm_rest向けのHTTPエンドポイントを提供する。
package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/engine"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	radiuspkg "github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/radius"
	"github.com/oyaguma3/portauth-radius-server/pkg/httputil"
)

// maxBodySize はリクエストボディの上限
const maxBodySize = 64 << 10

// HealthResponse はGET /healthの応答
type HealthResponse struct {
	Status string `json:"status"`
}

// Pinger はヘルスチェック対象のバックエンド
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler はrlm_restリクエストを判定エンジンへ渡す。
type Handler struct {
	processor engine.Processor
	opts      radiuspkg.EncodeOptions
	pinger    Pinger
}

// NewHandler は新しいHandlerを生成する。pingerがnilの場合、/healthは常にokを返す。
func NewHandler(processor engine.Processor, opts radiuspkg.EncodeOptions, pinger Pinger) *Handler {
	return &Handler{processor: processor, opts: opts, pinger: pinger}
}

// HandleRadius はPOST /radius/:phase のハンドラー。
// Accept → 200（reply:/control:属性）、Noop → 204、Reject → 401。
func (h *Handler) HandleRadius(c *gin.Context) {
	traceID := c.GetString(httputil.TraceIDKey)

	phase, ok := event.ParsePhase(c.Param("phase"))
	if !ok {
		httputil.WriteError(c, httputil.NotFound("unknown phase: "+c.Param("phase")))
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
	if err != nil {
		httputil.WriteError(c, httputil.BadRequest("failed to read request body"))
		return
	}
	attrs, err := ParseAttributes(body)
	if err != nil {
		slog.Warn("invalid rlm_rest body",
			"event_id", "REST_BODY_INVALID",
			"trace_id", traceID,
			"phase", string(phase),
			"error", err,
		)
		httputil.WriteError(c, httputil.BadRequest(err.Error()))
		return
	}

	ctx := logging.WithTraceID(c.Request.Context(), traceID)
	decision := h.processor.Process(ctx, phase, attrs)
	resp := radiuspkg.Encode(decision, h.opts)

	switch resp.Code {
	case radiuspkg.CodeAccept:
		c.JSON(http.StatusOK, responseBody(resp))
	case radiuspkg.CodeNoop:
		c.Status(http.StatusNoContent)
	default:
		c.Status(http.StatusUnauthorized)
	}
}

// HandleHealth はGET /health のハンドラー。ディレクトリに到達できなければ503。
func (h *Handler) HandleHealth(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context()); err != nil {
			slog.Warn("health check failed",
				"event_id", "HEALTH_NG",
				"trace_id", c.GetString(httputil.TraceIDKey),
				"error", err,
			)
			httputil.WriteError(c, httputil.ServiceUnavailable("directory unavailable"))
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// responseBody はrlm_restが解釈する "list:Attr" 形式のオブジェクトを返す
func responseBody(resp *radiuspkg.Response) map[string]string {
	body := make(map[string]string, len(resp.Reply)+len(resp.Control))
	for _, p := range resp.Reply {
		body["reply:"+p.Name] = p.Value
	}
	for _, p := range resp.Control {
		body["control:"+p.Name] = p.Value
	}
	return body
}
