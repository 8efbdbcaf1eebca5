package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/engine"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	radiuspkg "github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/radius"
	pkglogging "github.com/oyaguma3/portauth-radius-server/pkg/logging"
	"layeh.com/radius"
)

// HandlerConfig はネイティブリスナーの動作設定
type HandlerConfig struct {
	Encode                      radiuspkg.EncodeOptions
	RequireMessageAuthenticator bool
	// StatusReply はStatus-Serverへの応答コード（認証ポート: Access-Accept、会計ポート: Accounting-Response）
	StatusReply radius.Code
}

// Handler はRADIUSリクエストを判定エンジンへ渡すハンドラ。
// layeh.com/radius.Handlerインターフェースの実装。
type Handler struct {
	processor engine.Processor
	cfg       HandlerConfig
}

// NewHandler は新しいHandlerを生成する
func NewHandler(processor engine.Processor, cfg HandlerConfig) *Handler {
	if cfg.StatusReply == 0 {
		cfg.StatusReply = radius.CodeAccessAccept
	}
	return &Handler{processor: processor, cfg: cfg}
}

// ServeRADIUS はRADIUSリクエストを処理する
func (h *Handler) ServeRADIUS(w radius.ResponseWriter, r *radius.Request) {
	traceID := uuid.New().String()
	srcIP := extractIP(r.RemoteAddr)

	slog.Debug("radius packet received",
		"event_id", "PKT_RECV",
		"trace_id", traceID,
		"src_ip", srcIP,
		"code", r.Code.String(),
	)

	ctx := logging.WithTraceID(r.Context(), traceID)

	switch r.Code {
	case radius.CodeAccessRequest:
		h.handleAccessRequest(ctx, w, r, srcIP)
	case radius.CodeAccountingRequest:
		h.handleAccountingRequest(ctx, w, r, srcIP)
	case radius.CodeStatusServer:
		h.handleStatusServer(w, r, traceID, srcIP)
	default:
		slog.Warn("unsupported radius code",
			"event_id", "PKT_UNKNOWN_CODE",
			"trace_id", traceID,
			"src_ip", srcIP,
			"code", r.Code.String(),
		)
	}
}

// handleAccessRequest はAccess-Requestを判定し、Access-Accept/Rejectを返す
func (h *Handler) handleAccessRequest(ctx context.Context, w radius.ResponseWriter, r *radius.Request, srcIP string) {
	traceID := logging.TraceID(ctx)
	secret := r.Packet.Secret

	if err := radiuspkg.CheckMessageAuthenticator(r.Packet, secret, h.cfg.RequireMessageAuthenticator); err != nil {
		slog.Warn("message authenticator check failed",
			pkglogging.WithEventID("PKT_MA_INVALID"),
			pkglogging.WithTraceID(traceID),
			pkglogging.WithSrcIP(srcIP),
			pkglogging.WithError(err),
		)
		return // 応答なし
	}

	attrs := radiuspkg.Attributes(r.Packet)
	decision := h.processor.Process(ctx, accessPhase(attrs), attrs)
	resp := radiuspkg.Encode(decision, h.cfg.Encode)

	// NT-PasswordはEAP終端側でしか使えない
	if _, ok := resp.ControlValue(radiuspkg.AttrNTPassword); ok {
		slog.Warn("credential accept cannot be served natively, rejecting",
			"event_id", "PKT_CREDENTIAL_UNSUPPORTED",
			"trace_id", traceID,
			"src_ip", srcIP,
		)
		resp = &radiuspkg.Response{Code: radiuspkg.CodeReject}
	}

	h.write(w, radiuspkg.BuildAuthResponse(r.Packet, secret, resp), traceID)
}

// handleAccountingRequest はAccounting-Requestを検証し、Accounting-Responseを返す
func (h *Handler) handleAccountingRequest(ctx context.Context, w radius.ResponseWriter, r *radius.Request, srcIP string) {
	traceID := logging.TraceID(ctx)

	if !radiuspkg.VerifyAccountingAuthenticator(r.Packet, r.Packet.Secret) {
		slog.Warn("accounting authenticator verification failed",
			"event_id", "ACCT_AUTH_FAIL",
			"trace_id", traceID,
			"src_ip", srcIP,
		)
		return // 応答なし
	}

	attrs := radiuspkg.Attributes(r.Packet)
	h.processor.Process(ctx, event.PhaseAccounting, attrs)

	slog.Debug("accounting acknowledged",
		"event_id", "ACCT_ACK",
		"trace_id", traceID,
		"src_ip", srcIP,
		"status_type", attrs[radiuspkg.AttrAcctStatusType],
		"session_id", attrs[radiuspkg.AttrAcctSessionID],
	)
	h.write(w, radiuspkg.BuildAccountingResponse(r.Packet, radiuspkg.ExtractProxyStates(r.Packet)), traceID)
}

// handleStatusServer はStatus-Serverに応答する。検証失敗時は無応答。
func (h *Handler) handleStatusServer(w radius.ResponseWriter, r *radius.Request, traceID, srcIP string) {
	resp := radiuspkg.HandleStatusServer(r.Packet, r.Packet.Secret, h.cfg.StatusReply, srcIP, traceID)
	if resp == nil {
		return
	}
	h.write(w, resp, traceID)
}

func (h *Handler) write(w radius.ResponseWriter, resp *radius.Packet, traceID string) {
	if err := w.Write(resp); err != nil {
		slog.Error("failed to send radius response",
			"event_id", "PKT_SEND_ERR",
			"trace_id", traceID,
			"code", resp.Code.String(),
			pkglogging.WithError(err),
		)
	}
}

// accessPhase は無線ならauthorize、それ以外はpost-authを返す
func accessPhase(attrs map[string]string) event.Phase {
	if attrs[event.AttrNASPortType] == event.NASPortTypeWireless {
		return event.PhaseAuthorize
	}
	return event.PhasePostAuth
}
