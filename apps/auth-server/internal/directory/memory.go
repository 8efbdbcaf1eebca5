package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

// MemoryStore はメモリ上のStore実装。
// テストおよびディレクトリを持たない検証環境で使用する。
type MemoryStore struct {
	mu     sync.Mutex
	nas    []*model.NAS
	users  map[string]*model.User
	ports  map[string]*model.Port
	rooms  map[string]string
	ifaces map[string]*model.Interface
	pools  map[string][]string
	now    func() time.Time
}

// NewMemoryStore は空のMemoryStoreを生成する。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]*model.User),
		ports:  make(map[string]*model.Port),
		rooms:  make(map[string]string),
		ifaces: make(map[string]*model.Interface),
		pools:  make(map[string][]string),
		now:    time.Now,
	}
}

// AddNAS はNASを登録する。
func (m *MemoryStore) AddNAS(n model.NAS) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nas = append(m.nas, &n)
	return m
}

// AddUser は利用者を登録する。
func (m *MemoryStore) AddUser(u model.User) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Name] = &u
	return m
}

// AddPort はポートを登録する。
func (m *MemoryStore) AddPort(p model.Port) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ports[portKey(p.SwitchID, p.Number)] = &p
	return m
}

// SetOccupant は部屋の居住者を設定する。
func (m *MemoryStore) SetOccupant(room, user string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[room] = user
	return m
}

// AddInterface はインターフェースを登録する。
func (m *MemoryStore) AddInterface(i model.Interface) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ifaces[i.MAC] = &i
	return m
}

// AddPool はアドレスプールに空きアドレスを追加する。
func (m *MemoryStore) AddPool(hint string, addrs ...string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pools[hint] = append(m.pools[hint], addrs...)
	return m
}

// InterfaceCount は登録済みインターフェース数を返す。
func (m *MemoryStore) InterfaceCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ifaces)
}

// FindNAS はStoreを実装する。名前一致を優先し、次にIPv4一致を探す。
func (m *MemoryStore) FindNAS(ctx context.Context, identifier string) (*model.NAS, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.nas {
		if n.Name == identifier {
			c := *n
			return &c, nil
		}
	}
	for _, n := range m.nas {
		if n.IPv4 != "" && n.IPv4 == identifier {
			c := *n
			return &c, nil
		}
	}
	return nil, nil
}

// FindUser はStoreを実装する。
func (m *MemoryStore) FindUser(ctx context.Context, name string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userLocked(name), nil
}

// FindInterface はStoreを実装する。
func (m *MemoryStore) FindInterface(ctx context.Context, mac string) (*model.Interface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.ifaces[mac]
	if !ok {
		return nil, nil
	}
	c := *i
	return &c, nil
}

// FindPort はStoreを実装する。
func (m *MemoryStore) FindPort(ctx context.Context, switchID string, number int) (*model.Port, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.ports[portKey(switchID, number)]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

// FindRoomOccupant はStoreを実装する。
func (m *MemoryStore) FindRoomOccupant(ctx context.Context, room string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	name, ok := m.rooms[room]
	if !ok || name == "" {
		return nil, nil
	}
	return m.userLocked(name), nil
}

// CreateInterface はStoreを実装する。存在確認と作成をロック内で行う。
func (m *MemoryStore) CreateInterface(ctx context.Context, req *RegistrationRequest) (*model.Interface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.ifaces[req.MAC]; exists {
		return nil, fmt.Errorf("%w: %s", apperr.ErrRegistrationConflict, req.MAC)
	}
	if req.MaxPerOwner > 0 && m.countLocked(req.Owner) >= req.MaxPerOwner {
		return nil, fmt.Errorf("%w: owner=%s", apperr.ErrQuotaExceeded, req.Owner)
	}
	var ipv4 string
	if req.PoolHint != "" {
		addr, ok := m.popLocked(req.PoolHint)
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperr.ErrPoolExhausted, req.PoolHint)
		}
		ipv4 = addr
	}

	iface := model.NewInterface(req.MAC, ipv4, req.Owner, m.now().UTC().Format(time.RFC3339))
	m.ifaces[req.MAC] = iface
	c := *iface
	return &c, nil
}

// AssignIPv4 はStoreを実装する。
func (m *MemoryStore) AssignIPv4(ctx context.Context, mac, poolHint string) (*model.Interface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	iface, ok := m.ifaces[mac]
	if !ok {
		return nil, nil
	}
	if iface.IPv4 == "" {
		addr, ok := m.popLocked(poolHint)
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperr.ErrPoolExhausted, poolHint)
		}
		iface.IPv4 = addr
	}
	c := *iface
	return &c, nil
}

func (m *MemoryStore) userLocked(name string) *model.User {
	u, ok := m.users[name]
	if !ok {
		return nil
	}
	c := *u
	return &c
}

func (m *MemoryStore) countLocked(owner string) int {
	n := 0
	for _, i := range m.ifaces {
		if i.Owner == owner {
			n++
		}
	}
	return n
}

func (m *MemoryStore) popLocked(hint string) (string, bool) {
	pool := m.pools[hint]
	if len(pool) == 0 {
		return "", false
	}
	addr := pool[0]
	m.pools[hint] = pool[1:]
	return addr, true
}

func portKey(switchID string, number int) string {
	return fmt.Sprintf("%s:%d", switchID, number)
}

var _ Store = (*MemoryStore)(nil)
