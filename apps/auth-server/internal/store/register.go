package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
	"github.com/redis/go-redis/v9"
)

// createInterfaceScript は存在確認・上限確認・アドレス払い出し・作成を原子的に行う。
// Runは先にEVALSHAを試み、未登録ならEVALで再送する。
// KEYS: iface:{mac}, idx:user:ifaces:{owner}, pool:{hint}
// ARGV: mac, owner, max_per_owner, created_at, use_pool
var createInterfaceScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return {'conflict'}
end
local max = tonumber(ARGV[3])
if max > 0 and redis.call('SCARD', KEYS[2]) >= max then
  return {'quota'}
end
local ip = ''
if ARGV[5] == '1' then
  local popped = redis.call('SPOP', KEYS[3])
  if not popped then
    return {'exhausted'}
  end
  ip = popped
end
redis.call('HSET', KEYS[1], 'mac', ARGV[1], 'owner', ARGV[2], 'ipv4', ip, 'active', '1', 'created_at', ARGV[4])
redis.call('SADD', KEYS[2], ARGV[1])
return {'ok', ip}
`)

// assignIPv4Script はIPv4未割当のインターフェースにのみアドレスを払い出す。
// KEYS: iface:{mac}, pool:{hint}
var assignIPv4Script = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return {'missing'}
end
local ip = redis.call('HGET', KEYS[1], 'ipv4')
if ip and ip ~= '' then
  return {'ok', ip}
end
local popped = redis.call('SPOP', KEYS[2])
if not popped then
  return {'exhausted'}
end
redis.call('HSET', KEYS[1], 'ipv4', popped)
return {'ok', popped}
`)

// スクリプト結果
const (
	scriptOK        = "ok"
	scriptConflict  = "conflict"
	scriptQuota     = "quota"
	scriptExhausted = "exhausted"
	scriptMissing   = "missing"
)

// CreateInterface はStoreを実装する。
func (s *directoryStore) CreateInterface(ctx context.Context, req *directory.RegistrationRequest) (*model.Interface, error) {
	usePool := "0"
	if req.PoolHint != "" {
		usePool = "1"
	}
	createdAt := s.now()

	res, err := createInterfaceScript.Run(ctx, s.vc.Client(),
		[]string{ifaceKey(req.MAC), userIfacesKey(req.Owner), poolKey(req.PoolHint)},
		req.MAC, req.Owner, strconv.Itoa(req.MaxPerOwner), createdAt, usePool,
	).StringSlice()
	if err != nil {
		return nil, unavailable("EVALSHA", ifaceKey(req.MAC), err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: empty script result", ErrCorruptRecord)
	}

	switch res[0] {
	case scriptOK:
		var ipv4 string
		if len(res) > 1 {
			ipv4 = res[1]
		}
		return model.NewInterface(req.MAC, ipv4, req.Owner, createdAt), nil
	case scriptConflict:
		return nil, fmt.Errorf("%w: %s", apperr.ErrRegistrationConflict, req.MAC)
	case scriptQuota:
		return nil, fmt.Errorf("%w: owner=%s", apperr.ErrQuotaExceeded, req.Owner)
	case scriptExhausted:
		return nil, fmt.Errorf("%w: %s", apperr.ErrPoolExhausted, req.PoolHint)
	default:
		return nil, fmt.Errorf("%w: unexpected script result %q", ErrCorruptRecord, res[0])
	}
}

// AssignIPv4 はStoreを実装する。
func (s *directoryStore) AssignIPv4(ctx context.Context, mac, poolHint string) (*model.Interface, error) {
	res, err := assignIPv4Script.Run(ctx, s.vc.Client(),
		[]string{ifaceKey(mac), poolKey(poolHint)},
	).StringSlice()
	if err != nil {
		return nil, unavailable("EVALSHA", ifaceKey(mac), err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: empty script result", ErrCorruptRecord)
	}

	switch res[0] {
	case scriptOK:
		return s.FindInterface(ctx, mac)
	case scriptMissing:
		return nil, nil
	case scriptExhausted:
		return nil, fmt.Errorf("%w: %s", apperr.ErrPoolExhausted, poolHint)
	default:
		return nil, fmt.Errorf("%w: unexpected script result %q", ErrCorruptRecord, res[0])
	}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
