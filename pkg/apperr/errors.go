// Package apperr は判定処理で共有するエラーを定義する。
package apperr

import "errors"

// ErrMalformedEvent は属性からAuthEventを組み立てられないことを表す。判定はReject。
var ErrMalformedEvent = errors.New("malformed event")

// ディレクトリ呼び出しの失敗。ErrDirectoryUnavailable以外は登録処理の業務エラー。
var (
	ErrDirectoryUnavailable = errors.New("directory unavailable")
	ErrRegistrationConflict = errors.New("interface already registered")
	ErrRegistrationRefused  = errors.New("registration refused")
	ErrPoolExhausted        = errors.New("address pool exhausted")
	ErrQuotaExceeded        = errors.New("interface quota reached")
)
