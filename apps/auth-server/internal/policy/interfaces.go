package policy

import (
	"context"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/registration"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=policy

// Registrar は自動登録を行う。
// 業務上の失敗は*registration.Failure、ディレクトリ障害はそれ以外のエラーで返す。
type Registrar interface {
	Register(ctx context.Context, mac string, owner *model.User, poolHint string) (*registration.Result, error)
}
