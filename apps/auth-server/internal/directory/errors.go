package directory

import (
	"errors"
	"fmt"

	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
)

// ErrCircuitOpen はサーキットブレーカーがOpen状態の場合のエラー
var ErrCircuitOpen = errors.New("directory circuit breaker is open")

// RefusedError はディレクトリが登録を拒否した場合のエラー。
// Reasonは判定理由としてそのまま使用される。
type RefusedError struct {
	Reason string
}

// Error はerrorインターフェースを実装する。
func (e *RefusedError) Error() string {
	return fmt.Sprintf("registration refused: %s", e.Reason)
}

// Unwrap はapperr.ErrRegistrationRefusedを返す。
func (e *RefusedError) Unwrap() error {
	return apperr.ErrRegistrationRefused
}

// isOutcome はバックエンド障害ではなく業務上の結果を表すエラーかどうかを判定する。
// これらはサーキットブレーカーの失敗に数えない。
func isOutcome(err error) bool {
	return errors.Is(err, apperr.ErrRegistrationConflict) ||
		errors.Is(err, apperr.ErrPoolExhausted) ||
		errors.Is(err, apperr.ErrQuotaExceeded) ||
		errors.Is(err, apperr.ErrRegistrationRefused)
}

// outcomeLabel はメトリクス用の結果ラベルを返す。
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, apperr.ErrRegistrationConflict):
		return ResultConflict
	case errors.Is(err, apperr.ErrPoolExhausted):
		return ResultPoolExhausted
	case errors.Is(err, apperr.ErrQuotaExceeded):
		return ResultQuota
	default:
		return ResultRefused
	}
}
