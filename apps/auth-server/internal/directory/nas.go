package directory

import (
	"net/netip"

	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

// NAS は解決済みのネットワークアクセス装置。
// 実装は Switch / WirelessController / LocalNAS の3種のみ。
type NAS interface {
	nasKind() string
}

// Switch はポートを持つスイッチ。
type Switch struct {
	ID   string
	Name string
	IPv4 string
}

// WirelessController はポートを持たないRADIUSクライアント（無線コントローラ等）。
type WirelessController struct {
	Name string
	IPv4 string
}

// LocalNAS はループバックからの信頼済み要求を表す。
type LocalNAS struct {
	Address string
}

func (*Switch) nasKind() string             { return "switch" }
func (*WirelessController) nasKind() string { return "controller" }
func (*LocalNAS) nasKind() string           { return "local" }

// KindOf はログ・メトリクス用のNAS種別名を返す。nilは"none"。
func KindOf(n NAS) string {
	if n == nil {
		return "none"
	}
	return n.nasKind()
}

// PoolHint はアドレス払い出しに使うNASのIPv4を返す。
// LocalNASやIPv4未登録のNASではfalse。
func PoolHint(n NAS) (string, bool) {
	switch v := n.(type) {
	case *Switch:
		return v.IPv4, v.IPv4 != ""
	case *WirelessController:
		return v.IPv4, v.IPv4 != ""
	default:
		return "", false
	}
}

// IsLoopback は識別子がループバックアドレスかどうかを返す。
func IsLoopback(identifier string) bool {
	addr, err := netip.ParseAddr(identifier)
	if err != nil {
		return false
	}
	return addr.IsLoopback()
}

// fromRecord は保存レコードをNASに変換する。
func fromRecord(rec *model.NAS) NAS {
	if rec.IsSwitch() {
		id := rec.SwitchID
		if id == "" {
			id = rec.Name
		}
		return &Switch{ID: id, Name: rec.Name, IPv4: rec.IPv4}
	}
	return &WirelessController{Name: rec.Name, IPv4: rec.IPv4}
}
