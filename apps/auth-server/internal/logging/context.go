package logging

import "context"

// traceIDKey はコンテキストからTrace IDを取得するためのキー型
type traceIDKey struct{}

// WithTraceID はTrace IDを設定したコンテキストを返す。
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceID はコンテキストのTrace IDを返す。未設定の場合は空文字列。
func TraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}
