package model

// User は利用者を表す。
// Valkeyキー: user:{Name}
type User struct {
	Name      string `json:"name"`       // ユーザー名
	HasAccess bool   `json:"has_access"` // 接続権の有無（課金状態から算出済み）
	PwdNTLM   string `json:"pwd_ntlm"`   // NTハッシュ（32文字16進数）
}

// Room は部屋を表す。
// Valkeyキー: room:{Name}
type Room struct {
	Name     string `json:"name"`               // 部屋名
	Occupant string `json:"occupant,omitempty"` // 居住者ユーザー名（空=不在）
}

// Interface はMACアドレスと所有者の紐付けを表す。
// Valkeyキー: iface:{MAC}, 索引 idx:user:ifaces:{Owner}
type Interface struct {
	MAC       string `json:"mac"`            // MACアドレス（aa:bb:cc:dd:ee:ff形式）
	IPv4      string `json:"ipv4,omitempty"` // 割り当てIPv4アドレス（空=未割当）
	Owner     string `json:"owner"`          // 所有者ユーザー名
	Active    bool   `json:"active"`         // 有効フラグ
	CreatedAt string `json:"created_at"`     // 作成日時（RFC3339形式）
}

// NewInterface は有効状態の新しいInterfaceを生成する。
func NewInterface(mac, ipv4, owner, createdAt string) *Interface {
	return &Interface{
		MAC:       mac,
		IPv4:      ipv4,
		Owner:     owner,
		Active:    true,
		CreatedAt: createdAt,
	}
}

// OwnedBy はインターフェースが指定ユーザーの所有かどうかを返す。
func (i *Interface) OwnedBy(user string) bool {
	return i.Owner == user
}
