package model

// NASKind はNASの種別を表す。
type NASKind string

// NAS種別
const (
	NASKindSwitch     NASKind = "switch"     // ポートを持つスイッチ
	NASKindController NASKind = "controller" // 無線コントローラ（ポートなしのRADIUSクライアント）
)

// NAS はネットワークアクセス装置を表す。
// Valkeyキー: nas:{Name}, 索引 idx:nas:ip:{IPv4}
type NAS struct {
	Name     string  `json:"name"`                // 論理名（ドメイン名）
	IPv4     string  `json:"ipv4"`                // 割り当てIPv4アドレス
	Kind     NASKind `json:"kind"`                // 種別
	SwitchID string  `json:"switch_id,omitempty"` // スイッチID（Kind=switchの場合のみ）
}

// IsSwitch はNASがスイッチかどうかを返す。
func (n *NAS) IsSwitch() bool {
	return n.Kind == NASKindSwitch
}
