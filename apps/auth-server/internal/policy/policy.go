// Package policy は無線(802.1X)と有線ポートのアクセス判定を行う。
package policy

import (
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	pkglogging "github.com/oyaguma3/portauth-radius-server/pkg/logging"
)

// Policy は判定関数の依存をまとめる。リクエスト間で状態は持たない。
type Policy struct {
	cfg    Config
	dir    directory.Directory
	reg    Registrar
	masker *pkglogging.Masker
}

// New は新しいPolicyを生成する。
func New(cfg Config, dir directory.Directory, reg Registrar, masker *pkglogging.Masker) *Policy {
	if masker == nil {
		masker = pkglogging.NewMasker(true)
	}
	return &Policy{
		cfg:    cfg,
		dir:    dir,
		reg:    reg,
		masker: masker,
	}
}
