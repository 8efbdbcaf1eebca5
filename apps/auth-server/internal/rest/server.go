package rest

import (
	"context"
	"net/http"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/config"
)

// Server はrlm_rest用HTTPサーバー
type Server struct {
	srv *http.Server
}

// NewServer は新しいServerを生成する。
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  config.HTTPReadTimeout,
			WriteTimeout: config.HTTPWriteTimeout,
			IdleTimeout:  config.HTTPIdleTimeout,
		},
	}
}

// Addr は待ち受けアドレスを返す
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run はHTTPサーバーを起動する。Shutdown後はhttp.ErrServerClosedを返す。
func (s *Server) Run() error {
	return s.srv.ListenAndServe()
}

// Shutdown はサーバーをグレースフルに停止する。
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
