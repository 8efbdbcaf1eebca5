// Package directory は外部ディレクトリ（NAS・ポート・利用者・インターフェース）の解決を提供する。
package directory

import (
	"context"

	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

// Store はディレクトリバックエンドのインターフェース。
// 参照系は該当なしの場合 (nil, nil) を返す。
type Store interface {
	// FindNAS は名前または割り当てIPv4でNASを検索する。
	FindNAS(ctx context.Context, identifier string) (*model.NAS, error)
	// FindUser はユーザー名で利用者を検索する。
	FindUser(ctx context.Context, name string) (*model.User, error)
	// FindInterface はMACアドレスでインターフェースを検索する。
	FindInterface(ctx context.Context, mac string) (*model.Interface, error)
	// FindPort はスイッチIDとポート番号でポートを検索する。
	FindPort(ctx context.Context, switchID string, number int) (*model.Port, error)
	// FindRoomOccupant は部屋の居住者を返す。
	FindRoomOccupant(ctx context.Context, room string) (*model.User, error)
	// CreateInterface は存在しない場合のみインターフェースを作成する。
	// 既存時は apperr.ErrRegistrationConflict、プール枯渇は apperr.ErrPoolExhausted、
	// 上限超過は apperr.ErrQuotaExceeded、その他の拒否は *RefusedError を返す。
	CreateInterface(ctx context.Context, req *RegistrationRequest) (*model.Interface, error)
	// AssignIPv4 はIPv4未割当のインターフェースにアドレスを払い出す。
	AssignIPv4(ctx context.Context, mac, poolHint string) (*model.Interface, error)
}

// RegistrationRequest はインターフェース登録要求。
type RegistrationRequest struct {
	MAC         string
	Owner       string
	PoolHint    string
	MaxPerOwner int // 0は無制限
}

//go:generate mockgen -destination=../mocks/mock_directory.go -package=mocks github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory Store,Directory
