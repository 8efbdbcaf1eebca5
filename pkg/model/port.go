package model

import "strconv"

// PortPolicy はスイッチポートのポリシー値を表す。
// NO / BLOQ / STRICT / COMMON のいずれか、またはVLAN IDの数値文字列。
type PortPolicy string

// ポートポリシー
const (
	PortPolicyNo     PortPolicy = "NO"     // 認証なし
	PortPolicyBloq   PortPolicy = "BLOQ"   // 閉塞
	PortPolicyStrict PortPolicy = "STRICT" // 部屋の居住者を確認してからMAC確認
	PortPolicyCommon PortPolicy = "COMMON" // MAC確認のみ
)

// VLAN はポリシーが明示VLAN指定の場合にそのVLAN IDを返す。
func (p PortPolicy) VLAN() (int, bool) {
	switch p {
	case PortPolicyNo, PortPolicyBloq, PortPolicyStrict, PortPolicyCommon:
		return 0, false
	}
	vlan, err := strconv.Atoi(string(p))
	if err != nil {
		return 0, false
	}
	return vlan, true
}

// Port はスイッチポートを表す。
// Valkeyキー: port:{SwitchID}:{Number}
type Port struct {
	SwitchID  string     `json:"switch_id"`            // 所属スイッチID
	Number    int        `json:"number"`               // ポート番号
	Room      string     `json:"room,omitempty"`       // 部屋（空=未割当）
	Policy    PortPolicy `json:"policy"`               // ポリシー
	VlanForce *int       `json:"vlan_force,omitempty"` // 強制VLAN（nil=デフォルト）
}

// HasRoom はポートに部屋が割り当てられているかどうかを返す。
func (p *Port) HasRoom() bool {
	return p.Room != ""
}
