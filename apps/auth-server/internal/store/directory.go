package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
	"github.com/oyaguma3/portauth-radius-server/pkg/valkey"
)

// directoryStore はdirectory.StoreのValkey実装。
type directoryStore struct {
	vc  *ValkeyClient
	now func() string
}

// NewDirectoryStore は新しいdirectory.Storeを生成する。
func NewDirectoryStore(vc *ValkeyClient) directory.Store {
	return &directoryStore{vc: vc, now: nowRFC3339}
}

// FindNAS は名前キーを引き、なければIPv4索引を経由してNASを取得する。
func (s *directoryStore) FindNAS(ctx context.Context, identifier string) (*model.NAS, error) {
	nas, err := s.getNAS(ctx, identifier)
	if err != nil || nas != nil {
		return nas, err
	}

	name, err := s.vc.Client().Get(ctx, nasIPIndexKey(identifier)).Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return nil, nil
		}
		return nil, unavailable("GET", nasIPIndexKey(identifier), err)
	}
	return s.getNAS(ctx, name)
}

func (s *directoryStore) getNAS(ctx context.Context, name string) (*model.NAS, error) {
	h, err := s.hgetall(ctx, nasKey(name))
	if err != nil || h == nil {
		return nil, err
	}
	n := &model.NAS{
		Name:     h["name"],
		IPv4:     h["ipv4"],
		Kind:     model.NASKind(h["kind"]),
		SwitchID: h["switch_id"],
	}
	if n.Name == "" {
		n.Name = name
	}
	return n, nil
}

// FindUser はStoreを実装する。
func (s *directoryStore) FindUser(ctx context.Context, name string) (*model.User, error) {
	h, err := s.hgetall(ctx, userKey(name))
	if err != nil || h == nil {
		return nil, err
	}
	return &model.User{
		Name:      name,
		HasAccess: parseFlag(h["has_access"]),
		PwdNTLM:   h["pwd_ntlm"],
	}, nil
}

// FindInterface はStoreを実装する。
func (s *directoryStore) FindInterface(ctx context.Context, mac string) (*model.Interface, error) {
	h, err := s.hgetall(ctx, ifaceKey(mac))
	if err != nil || h == nil {
		return nil, err
	}
	return &model.Interface{
		MAC:       mac,
		IPv4:      h["ipv4"],
		Owner:     h["owner"],
		Active:    parseFlag(h["active"]),
		CreatedAt: h["created_at"],
	}, nil
}

// FindPort はStoreを実装する。policy未設定のポートはNOとして扱う。
func (s *directoryStore) FindPort(ctx context.Context, switchID string, number int) (*model.Port, error) {
	key := portKey(switchID, number)
	h, err := s.hgetall(ctx, key)
	if err != nil || h == nil {
		return nil, err
	}
	p := &model.Port{
		SwitchID: switchID,
		Number:   number,
		Room:     h["room"],
		Policy:   model.PortPolicy(h["policy"]),
	}
	if p.Policy == "" {
		p.Policy = model.PortPolicyNo
	}
	if v := h["vlan_force"]; v != "" {
		vlan, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s vlan_force=%q", ErrCorruptRecord, key, v)
		}
		p.VlanForce = &vlan
	}
	return p, nil
}

// FindRoomOccupant はStoreを実装する。
func (s *directoryStore) FindRoomOccupant(ctx context.Context, room string) (*model.User, error) {
	occupant, err := s.vc.Client().HGet(ctx, roomKey(room), "occupant").Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return nil, nil
		}
		return nil, unavailable("HGET", roomKey(room), err)
	}
	if occupant == "" {
		return nil, nil
	}
	return s.FindUser(ctx, occupant)
}

// hgetall はハッシュを取得する。キーが存在しない場合はnilを返す。
func (s *directoryStore) hgetall(ctx context.Context, key string) (map[string]string, error) {
	result, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, unavailable("HGETALL", key, err)
	}
	// キーが存在しない場合、HGetAllは空mapを返す
	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}

// parseFlag は "1" / "true" 等を真として解釈する。解釈不能は偽。
func parseFlag(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
