package server

import (
	"context"
	"log/slog"
	"net"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/store"
)

// DynamicSecretSource はNAS登録情報からRADIUS Shared Secretを解決する。
// layeh.com/radius.SecretSourceの実装。
type DynamicSecretSource struct {
	clients  store.ClientStore
	fallback []byte
}

// NewSecretSource はDynamicSecretSourceを生成する。
// clientsがnilの場合はfallbackSecretのみを使う。fallbackSecretが空ならフォールバック無効。
func NewSecretSource(clients store.ClientStore, fallbackSecret string) *DynamicSecretSource {
	s := &DynamicSecretSource{clients: clients}
	if fallbackSecret != "" {
		s.fallback = []byte(fallbackSecret)
	}
	return s
}

// RADIUSSecret は送信元に対応するSecretを返す。
// 登録済みSecret、フォールバックの順に解決し、どちらも無ければnil（パケット破棄）。
func (s *DynamicSecretSource) RADIUSSecret(ctx context.Context, remoteAddr net.Addr) ([]byte, error) {
	ip := extractIP(remoteAddr)
	if ip == "" {
		slog.Warn("failed to extract source address",
			"event_id", "RADIUS_IP_EXTRACT_ERR",
			"remote_addr", addrString(remoteAddr),
		)
		return s.fallback, nil
	}
	if s.clients == nil {
		return s.fallback, nil
	}

	client, err := s.clients.FindClient(ctx, ip)
	switch {
	case err != nil:
		slog.Warn("client secret lookup failed",
			"event_id", "RADIUS_SECRET_ERR",
			"src_ip", ip,
			"error", err,
		)
	case client != nil:
		slog.Debug("client resolved",
			"event_id", "RADIUS_CLIENT",
			"src_ip", ip,
			"client_name", client.Name,
		)
		return []byte(client.Secret), nil
	}

	if s.fallback == nil {
		slog.Warn("no shared secret for client",
			"event_id", "RADIUS_NO_SECRET",
			"src_ip", ip,
		)
	}
	return s.fallback, nil
}

// extractIP はnet.AddrからIPアドレス文字列を取り出す
func extractIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	if udpAddr, ok := addr.(*net.UDPAddr); ok {
		return udpAddr.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return ""
	}
	return host
}

func addrString(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	return addr.String()
}
