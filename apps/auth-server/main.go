// Package main はAuth Server（有線ポート・無線802.1XのRADIUS判定サーバー）のエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/config"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/engine"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/metrics"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/policy"
	radiuspkg "github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/radius"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/registration"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/rest"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/restdir"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/server"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/store"
	pkglogging "github.com/oyaguma3/portauth-radius-server/pkg/logging"
	"layeh.com/radius"
)

func main() {
	os.Exit(run())
}

// run はサーバーを起動し、停止までブロックする。終了コードを返す。
func run() int {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	// 2. ロガー初期化
	slog.SetDefault(logging.NewLogger(os.Stdout, cfg.LogLevel))

	slog.Info("starting auth-server",
		"listen_addr", cfg.ListenAddr,
		"acct_listen_addr", cfg.AcctListenAddr,
		"http_listen_addr", cfg.HTTPListenAddr,
		"directory_backend", cfg.DirectoryBackend,
		"mac_auto_capture", cfg.MacAutoCapture,
	)

	// 3. メトリクス
	m := metrics.New()
	if err := m.Register(); err != nil {
		slog.Error("failed to register metrics", "error", err)
		return 1
	}

	// 4. ディレクトリバックエンド
	backend, err := openDirectory(cfg)
	if err != nil {
		slog.Error("failed to open directory backend",
			"event_id", "DIRECTORY_CONN_ERR",
			"backend", cfg.DirectoryBackend,
			"error", err,
		)
		return 1
	}
	defer backend.close()

	// 5. 判定エンジン
	masker := pkglogging.NewMasker(cfg.LogMaskMAC)
	dir := directory.NewAdapter(backend.store, cfg.DirectoryBackend, cfg.DirectoryTimeout, m)
	registrar := registration.NewRegistrar(dir, cfg.MaxInterfacesPerUser, m, masker)
	pol := policy.New(policy.Config{
		DefaultOkVlan:  cfg.DefaultOkVlan,
		DefaultNokVlan: cfg.DefaultNokVlan,
		MacAutoCapture: cfg.MacAutoCapture,
	}, dir, registrar, masker)
	eng := engine.NewEngine(pol, m, masker)
	encodeOpts := radiuspkg.EncodeOptions{QuarantineOnReject: cfg.QuarantineOnReject}

	// 6. RADIUSリスナー（認証・会計）
	secretSource := server.NewSecretSource(backend.clients, cfg.RadiusSecret)
	authSrv := server.NewServer("auth", cfg.ListenAddr, server.NewHandler(eng, server.HandlerConfig{
		Encode:                      encodeOpts,
		RequireMessageAuthenticator: cfg.RequireMessageAuthenticator,
		StatusReply:                 radius.CodeAccessAccept,
	}), secretSource)
	acctSrv := server.NewServer("acct", cfg.AcctListenAddr, server.NewHandler(eng, server.HandlerConfig{
		Encode:                      encodeOpts,
		RequireMessageAuthenticator: cfg.RequireMessageAuthenticator,
		StatusReply:                 radius.CodeAccountingResponse,
	}), secretSource)

	// 7. rlm_rest HTTPサーバー
	gin.SetMode(cfg.GinMode)
	httpSrv := rest.NewServer(cfg.HTTPListenAddr, rest.NewRouter(rest.NewHandler(eng, encodeOpts, backend.pinger), m.Handler()))

	// 8. サーバー起動（goroutine）
	errCh := make(chan error, 3)
	for _, s := range []*server.Server{authSrv, acctSrv} {
		go func(s *server.Server) {
			slog.Info("radius listener started", "listener", s.Name(), "addr", s.Addr())
			if err := s.Run(); err != nil {
				errCh <- err
			}
		}(s)
	}
	go func() {
		slog.Info("http server started", "addr", httpSrv.Addr())
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 9. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	exitCode := 0
	select {
	case sig := <-sigCh:
		slog.Info("signal received, shutting down", "signal", sig.String())
	case err := <-errCh:
		slog.Error("server error", "event_id", "SERVER_ERR", "error", err)
		exitCode = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Warn("http server shutdown error", "error", err)
	}
	for _, s := range []*server.Server{authSrv, acctSrv} {
		if err := s.Shutdown(ctx); err != nil {
			slog.Warn("radius listener shutdown error", "listener", s.Name(), "error", err)
		}
	}

	slog.Info("auth-server stopped")
	return exitCode
}

// directoryBackend は選択されたディレクトリバックエンド
type directoryBackend struct {
	store   directory.Store
	clients store.ClientStore // RESTバックエンドではnil（RADIUS_SECRETのみ）
	pinger  rest.Pinger       // /healthで確認する接続。RESTバックエンドではnil
	close   func()
}

// openDirectory は設定されたバックエンドを開く。
func openDirectory(cfg *config.Config) (*directoryBackend, error) {
	switch cfg.DirectoryBackend {
	case config.BackendREST:
		slog.Info("using upstream directory API", "url", cfg.DirectoryAPIURL)
		return &directoryBackend{store: restdir.NewClient(cfg), close: func() {}}, nil
	default:
		vc, err := store.NewValkeyClient(cfg)
		if err != nil {
			return nil, err
		}
		slog.Info("connected to Valkey", "addr", cfg.ValkeyAddr())
		return &directoryBackend{
			store:   store.NewDirectoryStore(vc),
			clients: store.NewClientStore(vc),
			pinger:  vc,
			close: func() {
				if err := vc.Close(); err != nil {
					slog.Warn("failed to close Valkey client", "error", err)
				}
			},
		}, nil
	}
}
