package radius

import (
	"log/slog"

	"layeh.com/radius"
)

// HandleStatusServer はStatus-Server(Code=12)に応答する（RFC 5997）。
// 認証ポートではAccess-Accept、会計ポートではAccounting-Responseを返す。
// Message-Authenticator検証失敗時はnilを返す（応答なし）。
func HandleStatusServer(request *radius.Packet, secret []byte, replyCode radius.Code, srcIP, traceID string) *radius.Packet {
	if !VerifyMessageAuthenticator(request, secret) {
		slog.Warn("status-server message authenticator verification failed",
			"event_id", "RADIUS_STATUS_AUTH_FAIL",
			"trace_id", traceID,
			"src_ip", srcIP,
		)
		return nil
	}

	resp := request.Response(replyCode)
	ExtractProxyStates(request).Apply(resp)
	SetMessageAuthenticator(resp, secret, request.Authenticator)

	slog.Debug("status-server answered",
		"event_id", "RADIUS_STATUS_OK",
		"trace_id", traceID,
		"src_ip", srcIP,
		"code", replyCode.String(),
	)
	return resp
}
