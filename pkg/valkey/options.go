// Package valkey はディレクトリ参照用のValkey接続を扱う。
package valkey

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// 既定値
const (
	defaultDialTimeout  = 3 * time.Second
	defaultCallTimeout  = 2 * time.Second
	defaultPoolSize     = 10
	defaultMinIdleConns = 2
)

// Options はValkey接続の設定。ゼロ値のフィールドは既定値で補う。
type Options struct {
	Addr     string
	Password string

	DialTimeout time.Duration
	// CallTimeout はソケット単位の読み書き上限。
	// 呼び出しごとの期限はcontext側で掛ける。
	CallTimeout time.Duration

	PoolSize     int
	MinIdleConns int
}

// DirectoryOptions はディレクトリ呼び出し期限に読み書き上限を揃えたOptionsを返す。
func DirectoryOptions(addr, password string, callTimeout time.Duration) Options {
	return Options{
		Addr:        addr,
		Password:    password,
		CallTimeout: callTimeout,
	}
}

// withDefaults はゼロ値を既定値で埋めたコピーを返す。
func (o Options) withDefaults() Options {
	if o.Addr == "" {
		o.Addr = "localhost:6379"
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = defaultDialTimeout
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = defaultCallTimeout
	}
	if o.PoolSize <= 0 {
		o.PoolSize = defaultPoolSize
	}
	if o.MinIdleConns < 0 || o.MinIdleConns > o.PoolSize {
		o.MinIdleConns = defaultMinIdleConns
	}
	return o
}

func (o Options) redisOptions() *redis.Options {
	o = o.withDefaults()
	return &redis.Options{
		Addr:         o.Addr,
		Password:     o.Password,
		DialTimeout:  o.DialTimeout,
		ReadTimeout:  o.CallTimeout,
		WriteTimeout: o.CallTimeout,
		PoolSize:     o.PoolSize,
		MinIdleConns: o.MinIdleConns,
	}
}
