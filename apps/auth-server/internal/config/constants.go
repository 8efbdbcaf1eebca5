package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMinIdleConns   = 2
)

// 上流ディレクトリAPI接続設定
const (
	DirectoryAPIConnectTimeout = 2 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "directory"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// VLAN ID範囲（IEEE 802.1Q）
const (
	MinVLAN = 1
	MaxVLAN = 4094
)

// HTTPサーバー設定
const (
	HTTPReadTimeout  = 5 * time.Second
	HTTPWriteTimeout = 5 * time.Second
	HTTPIdleTimeout  = 60 * time.Second
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)
