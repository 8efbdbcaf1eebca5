package valkey

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout は/health用PINGの既定上限
const pingTimeout = 500 * time.Millisecond

// Dial はクライアントを作り、PINGが通ることを確かめてから返す。
// ctxに期限が無ければDialTimeoutを掛ける。
func Dial(ctx context.Context, opts Options) (*redis.Client, error) {
	ro := opts.redisOptions()
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ro.DialTimeout)
		defer cancel()
	}

	client := redis.NewClient(ro)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Ping は接続状態を確認する。timeoutが0以下なら500msを使う。
func Ping(ctx context.Context, client *redis.Client, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = pingTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctx).Err()
}

// IsKeyNotFound はredis.Nil（キー・フィールド無し）を判定する。
func IsKeyNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
