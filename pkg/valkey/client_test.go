package valkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func dialTest(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Dial(context.Background(), DirectoryOptions(mr.Addr(), "", time.Second))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestDial(t *testing.T) {
	mr, client := dialTest(t)
	mr.HSet("user:alice", "status", "active")

	got, err := client.HGet(context.Background(), "user:alice", "status").Result()
	if err != nil {
		t.Fatalf("HGet() error = %v", err)
	}
	if got != "active" {
		t.Errorf("HGet() = %q, want %q", got, "active")
	}
}

func TestDial_Unreachable(t *testing.T) {
	opts := DirectoryOptions("127.0.0.1:1", "", 100*time.Millisecond)
	opts.DialTimeout = 100 * time.Millisecond

	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"dial timeout", func() (context.Context, context.CancelFunc) {
			return context.WithCancel(context.Background())
		}},
		{"caller deadline", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 200*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()
			if client, err := Dial(ctx, opts); err == nil {
				_ = client.Close()
				t.Error("Dial() expected error for unreachable address")
			}
		})
	}
}

func TestPing(t *testing.T) {
	mr, client := dialTest(t)

	if err := Ping(context.Background(), client, 0); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	mr.Close()
	if err := Ping(context.Background(), client, 100*time.Millisecond); err == nil {
		t.Error("Ping() expected error after server close")
	}
}

func TestIsKeyNotFound(t *testing.T) {
	_, client := dialTest(t)
	ctx := context.Background()

	_, missingField := client.HGet(ctx, "nas:sw-01", "kind").Result()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing hash field", missingField, true},
		{"redis.Nil", redis.Nil, true},
		{"wrapped", errors.Join(errors.New("lookup"), redis.Nil), true},
		{"other error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKeyNotFound(tt.err); got != tt.want {
				t.Errorf("IsKeyNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
