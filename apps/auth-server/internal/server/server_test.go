package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/engine"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/policy"
	"go.uber.org/mock/gomock"
	"layeh.com/radius"
	"layeh.com/radius/rfc2868"
)

func TestNewServer(t *testing.T) {
	handler := radius.HandlerFunc(func(w radius.ResponseWriter, r *radius.Request) {})
	secrets := radius.StaticSecretSource(testSecret)

	tests := []struct {
		name string
		addr string
	}{
		{"auth", ":1812"},
		{"acct", ":1813"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(tt.name, tt.addr, handler, secrets)
			if s.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.name)
			}
			if s.Addr() != tt.addr {
				t.Errorf("Addr() = %q, want %q", s.Addr(), tt.addr)
			}
			if s.ps.Network != "udp" {
				t.Errorf("Network = %q, want udp", s.ps.Network)
			}
		})
	}
}

func TestShutdownIsNil(t *testing.T) {
	other := errors.New("bind: address already in use")
	if err := shutdownIsNil(radius.ErrServerShutdown); err != nil {
		t.Errorf("shutdownIsNil(ErrServerShutdown) = %v, want nil", err)
	}
	if err := shutdownIsNil(other); !errors.Is(err, other) {
		t.Errorf("shutdownIsNil(other) = %v, want %v", err, other)
	}
}

// ループバック上で実際にAccess-Requestを交換する
func TestServer_Exchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProc := engine.NewMockProcessor(ctrl)
	mockProc.EXPECT().Process(gomock.Any(), event.PhasePostAuth, gomock.Any()).
		Return(policy.AcceptVLAN(42, policy.ReasonKnownDevice))

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenPacket() error = %v", err)
	}
	s := NewServer("auth", conn.LocalAddr().String(),
		NewHandler(mockProc, HandlerConfig{RequireMessageAuthenticator: true}),
		radius.StaticSecretSource(testSecret))
	go func() { _ = s.Serve(conn) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
		_ = conn.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	resp, err := radius.Exchange(ctx, buildWiredRequest(true), conn.LocalAddr().String())
	if err != nil {
		t.Fatalf("Exchange() error = %v", err)
	}
	if resp.Code != radius.CodeAccessAccept {
		t.Errorf("Code = %v, want %v", resp.Code, radius.CodeAccessAccept)
	}
	if _, vlan, _ := rfc2868.TunnelPrivateGroupID_LookupString(resp); vlan != "42" {
		t.Errorf("Tunnel-Private-Group-Id = %q, want %q", vlan, "42")
	}
}
