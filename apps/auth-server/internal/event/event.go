// Package event はRADIUS属性マップを判定エンジンの入力イベントへ正規化する。
package event

// Kind はイベント種別を表す。
type Kind int

// イベント種別
const (
	KindWireless      Kind = iota + 1 // 802.1X無線
	KindWiredPostAuth                 // 有線ポート（post-auth / MAC認証）
)

// String は種別名を返す。
func (k Kind) String() string {
	switch k {
	case KindWireless:
		return "wireless"
	case KindWiredPostAuth:
		return "wired"
	default:
		return "unknown"
	}
}

// Phase はイベントを配送したFreeRADIUSセクションを表す。
type Phase string

// フェーズ
const (
	PhaseAuthorize  Phase = "authorize"
	PhasePostAuth   Phase = "post-auth"
	PhaseAccounting Phase = "accounting"
)

// ParsePhase は文字列からPhaseを返す。
func ParsePhase(s string) (Phase, bool) {
	switch p := Phase(s); p {
	case PhaseAuthorize, PhasePostAuth, PhaseAccounting:
		return p, true
	}
	return "", false
}

// AuthEvent は正規化済みの判定入力。
type AuthEvent struct {
	Kind             Kind
	Phase            Phase
	NASIdentifier    string // NAS-IP-Address または NAS-Identifier（無線では空を許容）
	CallingStationID string // 正規化済みMAC（aa:bb:cc:dd:ee:ff）
	Username         string // 無線のみ。レルム除去済み
	Port             int    // 有線のみ
}

// IsWireless は無線イベントかどうかを返す。
func (e *AuthEvent) IsWireless() bool {
	return e.Kind == KindWireless
}
