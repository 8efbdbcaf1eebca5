package store

import (
	"context"

	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

// clientStore はClientStoreのValkey実装
type clientStore struct {
	vc *ValkeyClient
}

// NewClientStore は新しいClientStoreを生成する。
func NewClientStore(vc *ValkeyClient) ClientStore {
	return &clientStore{vc: vc}
}

// FindClient は client:{ip} ハッシュを読む。secretが空のレコードは未登録扱い。
func (s *clientStore) FindClient(ctx context.Context, ip string) (*model.RadiusClient, error) {
	key := clientKey(ip)
	h, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, unavailable("HGETALL", key, err)
	}
	if h["secret"] == "" {
		return nil, nil
	}
	return &model.RadiusClient{IP: ip, Secret: h["secret"], Name: h["name"]}, nil
}
