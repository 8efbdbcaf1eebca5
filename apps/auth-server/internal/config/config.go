package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ディレクトリバックエンド種別
const (
	BackendValkey = "valkey"
	BackendREST   = "rest"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// ディレクトリ設定
	DirectoryBackend string        `envconfig:"DIRECTORY_BACKEND" default:"valkey"`
	DirectoryAPIURL  string        `envconfig:"DIRECTORY_API_URL"`
	DirectoryTimeout time.Duration `envconfig:"DIRECTORY_TIMEOUT" default:"2s"`

	// Valkey接続設定（DIRECTORY_BACKEND=valkeyの場合は必須）
	RedisHost string `envconfig:"REDIS_HOST"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// RADIUS設定
	RadiusSecret                string `envconfig:"RADIUS_SECRET"`
	ListenAddr                  string `envconfig:"LISTEN_ADDR" default:":1812"`
	AcctListenAddr              string `envconfig:"ACCT_LISTEN_ADDR" default:":1813"`
	RequireMessageAuthenticator bool   `envconfig:"REQUIRE_MESSAGE_AUTHENTICATOR" default:"false"`

	// rlm_rest HTTP設定
	HTTPListenAddr string `envconfig:"HTTP_LISTEN_ADDR" default:":8080"`
	GinMode        string `envconfig:"GIN_MODE" default:"release"`

	// 判定ポリシー設定
	DefaultOkVlan        int  `envconfig:"DEFAULT_OK_VLAN" required:"true"`
	DefaultNokVlan       int  `envconfig:"DEFAULT_NOK_VLAN" required:"true"`
	MacAutoCapture       bool `envconfig:"MAC_AUTO_CAPTURE" default:"false"`
	MaxInterfacesPerUser int  `envconfig:"MAX_INTERFACES_PER_USER" default:"0"`
	QuarantineOnReject   bool `envconfig:"QUARANTINE_ON_REJECT" default:"false"`

	// ログ設定
	LogLevel   string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskMAC bool   `envconfig:"LOG_MASK_MAC" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	switch c.DirectoryBackend {
	case BackendValkey:
		if strings.TrimSpace(c.RedisHost) == "" {
			return fmt.Errorf("REDIS_HOST is required when DIRECTORY_BACKEND=valkey")
		}
		if c.RedisPass == "" {
			return fmt.Errorf("REDIS_PASS is required when DIRECTORY_BACKEND=valkey")
		}
	case BackendREST:
		if !strings.HasPrefix(c.DirectoryAPIURL, "http://") && !strings.HasPrefix(c.DirectoryAPIURL, "https://") {
			return fmt.Errorf("DIRECTORY_API_URL must start with http:// or https://")
		}
	default:
		return fmt.Errorf("DIRECTORY_BACKEND must be %q or %q, got %q", BackendValkey, BackendREST, c.DirectoryBackend)
	}
	if c.DirectoryTimeout <= 0 {
		return fmt.Errorf("DIRECTORY_TIMEOUT must be positive")
	}
	if !validVLAN(c.DefaultOkVlan) {
		return fmt.Errorf("DEFAULT_OK_VLAN must be in %d..%d, got %d", MinVLAN, MaxVLAN, c.DefaultOkVlan)
	}
	if !validVLAN(c.DefaultNokVlan) {
		return fmt.Errorf("DEFAULT_NOK_VLAN must be in %d..%d, got %d", MinVLAN, MaxVLAN, c.DefaultNokVlan)
	}
	if c.MaxInterfacesPerUser < 0 {
		return fmt.Errorf("MAX_INTERFACES_PER_USER must not be negative")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

func validVLAN(v int) bool {
	return v >= MinVLAN && v <= MaxVLAN
}
