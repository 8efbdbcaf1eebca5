// Package store はValkeyへのデータアクセスを提供する。
package store

import (
	"context"
	"fmt"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/config"
	"github.com/oyaguma3/portauth-radius-server/pkg/valkey"
	"github.com/redis/go-redis/v9"
)

// ValkeyClient はValkeyクライアントをラップする。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成する。
// 読み書きタイムアウトはディレクトリ呼び出し期限に揃える。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	opts := valkey.DirectoryOptions(cfg.ValkeyAddr(), cfg.RedisPass, cfg.DirectoryTimeout)
	opts.DialTimeout = config.ValkeyConnectTimeout
	opts.PoolSize = config.ValkeyPoolSize
	opts.MinIdleConns = config.ValkeyMinIdleConns

	client, err := valkey.Dial(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}
	return &ValkeyClient{client: client}, nil
}

// NewValkeyClientFromRedis は既存のredis.ClientからValkeyClientを生成する。
func NewValkeyClientFromRedis(client *redis.Client) *ValkeyClient {
	return &ValkeyClient{client: client}
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredis.Clientを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}

// Ping はヘルスチェック用に接続状態を確認する。
func (v *ValkeyClient) Ping(ctx context.Context) error {
	return valkey.Ping(ctx, v.client, 0)
}
