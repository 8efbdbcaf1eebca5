package store

import (
	"context"

	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

//go:generate mockgen -destination=../mocks/mock_store.go -package=mocks github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/store ClientStore

// ClientStore はRADIUSクライアント（NAS）の登録情報を参照する
type ClientStore interface {
	// FindClient は送信元IPのクライアント設定を返す。未登録はnil, nil
	FindClient(ctx context.Context, ip string) (*model.RadiusClient, error)
}
