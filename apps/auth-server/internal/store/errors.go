package store

import (
	"errors"
	"fmt"

	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
)

var (
	// ErrValkeyUnavailable はValkeyへの接続が利用不可能な場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")

	// ErrCorruptRecord は保存レコードが解釈できない場合のエラー
	ErrCorruptRecord = errors.New("corrupt record")
)

// unavailable はValkey操作エラーを操作名・キー付きでErrValkeyUnavailableにラップする
func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %w", ErrValkeyUnavailable, apperr.NewValkeyError(op, key, err))
}
