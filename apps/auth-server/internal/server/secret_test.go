package server

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/mocks"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
	"go.uber.org/mock/gomock"
)

func TestSecretSource(t *testing.T) {
	nasAddr := &net.UDPAddr{IP: net.ParseIP("10.1.0.1"), Port: 1812}

	tests := []struct {
		name      string
		stored    string
		storeErr  error
		fallback  string
		want      string
		wantNil   bool
		skipStore bool
		addr      net.Addr
	}{
		{name: "registered", stored: "nas-secret", fallback: "fallback", want: "nas-secret", addr: nasAddr},
		{name: "unregistered uses fallback", fallback: "fallback", want: "fallback", addr: nasAddr},
		{name: "unregistered without fallback", wantNil: true, addr: nasAddr},
		{name: "store error uses fallback", storeErr: errors.New("valkey unavailable"), fallback: "fallback", want: "fallback", addr: nasAddr},
		{name: "store error without fallback", storeErr: errors.New("valkey unavailable"), wantNil: true, addr: nasAddr},
		{name: "nil addr uses fallback", fallback: "fallback", want: "fallback", skipStore: true},
		{name: "nil addr without fallback", wantNil: true, skipStore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCS := mocks.NewMockClientStore(ctrl)
			if !tt.skipStore {
				var client *model.RadiusClient
				if tt.stored != "" {
					client = &model.RadiusClient{IP: "10.1.0.1", Secret: tt.stored, Name: "sw-a1"}
				}
				mockCS.EXPECT().FindClient(gomock.Any(), "10.1.0.1").Return(client, tt.storeErr)
			}

			ss := NewSecretSource(mockCS, tt.fallback)
			secret, err := ss.RADIUSSecret(context.Background(), tt.addr)
			if err != nil {
				t.Fatalf("RADIUSSecret() error = %v", err)
			}
			if tt.wantNil {
				if secret != nil {
					t.Errorf("secret = %q, want nil", secret)
				}
				return
			}
			if string(secret) != tt.want {
				t.Errorf("secret = %q, want %q", secret, tt.want)
			}
		})
	}
}

func TestSecretSource_StaticOnly(t *testing.T) {
	ss := NewSecretSource(nil, "shared")

	secret, err := ss.RADIUSSecret(context.Background(), &net.UDPAddr{IP: net.ParseIP("10.1.0.1"), Port: 1812})
	if err != nil {
		t.Fatalf("RADIUSSecret() error = %v", err)
	}
	if string(secret) != "shared" {
		t.Errorf("secret = %q, want %q", secret, "shared")
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name string
		addr net.Addr
		want string
	}{
		{"UDPAddr IPv4", &net.UDPAddr{IP: net.ParseIP("10.0.0.1"), Port: 1812}, "10.0.0.1"},
		{"UDPAddr IPv6", &net.UDPAddr{IP: net.ParseIP("::1"), Port: 1812}, "::1"},
		{"TCPAddr", &net.TCPAddr{IP: net.ParseIP("172.16.0.1"), Port: 1812}, "172.16.0.1"},
		{"nil addr", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractIP(tt.addr); got != tt.want {
				t.Errorf("extractIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
