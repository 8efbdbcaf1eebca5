// Package server はRADIUS UDPリスナー（認証ポート・会計ポート）を提供する。
package server

import (
	"context"
	"errors"
	"net"

	"layeh.com/radius"
)

// Server は1つのUDPポートで受けるRADIUSリスナー。
// パケットはlayeh.com/radiusがgoroutineごとにHandlerへ渡す。
type Server struct {
	name string
	ps   radius.PacketServer
}

// NewServer はリスナーを生成する。nameはログ用（auth / acct）。
func NewServer(name, addr string, handler radius.Handler, secrets radius.SecretSource) *Server {
	return &Server{
		name: name,
		ps: radius.PacketServer{
			Addr:         addr,
			Network:      "udp",
			Handler:      handler,
			SecretSource: secrets,
		},
	}
}

func (s *Server) Name() string { return s.name }

func (s *Server) Addr() string { return s.ps.Addr }

// Run はAddrで待ち受け、Shutdownまでブロックする。Shutdownによる終了はnil。
func (s *Server) Run() error {
	return shutdownIsNil(s.ps.ListenAndServe())
}

// Serve は既に開いたconnで待ち受ける。
func (s *Server) Serve(conn net.PacketConn) error {
	return shutdownIsNil(s.ps.Serve(conn))
}

// Shutdown は新規受信を止め、処理中のパケットを待つ。
func (s *Server) Shutdown(ctx context.Context) error {
	return s.ps.Shutdown(ctx)
}

func shutdownIsNil(err error) error {
	if errors.Is(err, radius.ErrServerShutdown) {
		return nil
	}
	return err
}
