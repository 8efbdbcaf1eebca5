package radius

import (
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
)

// ProxyStates はリクエストのProxy-State属性値（受信順）。
// 応答には同じ順序で含める（RFC 2865 5.33）。
type ProxyStates [][]byte

// ExtractProxyStates はパケットから全Proxy-State属性を抽出する。
func ExtractProxyStates(p *radius.Packet) ProxyStates {
	values, _ := rfc2865.ProxyState_Gets(p)
	return ProxyStates(values)
}

// Apply はProxy-State属性を応答パケットに追加する。
func (ps ProxyStates) Apply(p *radius.Packet) {
	for _, v := range ps {
		_ = rfc2865.ProxyState_Add(p, v)
	}
}
