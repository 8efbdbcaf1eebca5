package logging

import "log/slog"

// 属性キー
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldSrcIP      = "src_ip"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldMAC        = "mac"
	FieldUser       = "user"
	FieldNAS        = "nas"
	FieldPhase      = "phase"
	FieldOutcome    = "outcome"
	FieldReason     = "reason"
)

// With* は属性キーを固定したslog.Attrを返す。
func WithTraceID(id string) slog.Attr { return slog.String(FieldTraceID, id) }
func WithEventID(id string) slog.Attr { return slog.String(FieldEventID, id) }
func WithSrcIP(ip string) slog.Attr { return slog.String(FieldSrcIP, ip) }
func WithNAS(nas string) slog.Attr { return slog.String(FieldNAS, nas) }
func WithPhase(phase string) slog.Attr { return slog.String(FieldPhase, phase) }
func WithOutcome(o string) slog.Attr { return slog.String(FieldOutcome, o) }
func WithReason(reason string) slog.Attr { return slog.String(FieldReason, reason) }
func WithHTTPStatus(code int) slog.Attr { return slog.Int(FieldHTTPStatus, code) }
func WithLatency(ms int64) slog.Attr { return slog.Int64(FieldLatencyMs, ms) }

// WithError はerr.Error()を値にする。nilは空文字列。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}
