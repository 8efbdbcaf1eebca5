// Package logging はauth-server固有のログ設定とトレースID伝搬を提供する。
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// AppName はログの app フィールド値。
const AppName = "auth-server"

// ParseLevel はLOG_LEVEL文字列をslog.Levelに変換する。未知の値はINFO。
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger はJSON形式のロガーを生成する。
func NewLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With("app", AppName)
}
