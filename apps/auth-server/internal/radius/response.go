package radius

import (
	"strconv"

	"layeh.com/radius"
	"layeh.com/radius/rfc2868"
)

// BuildAccessAccept はAccess-Acceptパケットを構築する。
// vlanが空でなければTunnel属性（Tunnel-Type=VLAN, Tunnel-Medium-Type=IEEE-802）を付与する。
func BuildAccessAccept(request *radius.Packet, secret []byte, vlan string, proxyStates ProxyStates) *radius.Packet {
	resp := request.Response(radius.CodeAccessAccept)

	if vlan != "" {
		// Tag=0: タグなし。VLAN(13)はrfc2868に定数がないため直接指定。
		_ = rfc2868.TunnelType_Set(resp, 0, tunnelTypeVLANValue)
		_ = rfc2868.TunnelMediumType_Set(resp, 0, rfc2868.TunnelMediumType_Value_IEEE802)
		_ = rfc2868.TunnelPrivateGroupID_SetString(resp, 0, vlan)
	}

	proxyStates.Apply(resp)
	SetMessageAuthenticator(resp, secret, request.Authenticator)
	return resp
}

// BuildAccessReject はAccess-Rejectパケットを構築する。
func BuildAccessReject(request *radius.Packet, secret []byte, proxyStates ProxyStates) *radius.Packet {
	resp := request.Response(radius.CodeAccessReject)
	proxyStates.Apply(resp)
	SetMessageAuthenticator(resp, secret, request.Authenticator)
	return resp
}

// BuildAccountingResponse はAccounting-Responseパケットを構築する（RFC 2866）。
// Response Authenticatorはlayeh.com/radiusのEncodeが計算する。
func BuildAccountingResponse(request *radius.Packet, proxyStates ProxyStates) *radius.Packet {
	resp := request.Response(radius.CodeAccountingResponse)
	proxyStates.Apply(resp)
	return resp
}

// BuildAuthResponse はエンコード済み応答からAccess-Accept/Rejectを構築する。
// ネイティブリスナーではNoopはRejectとして返す。
func BuildAuthResponse(request *radius.Packet, secret []byte, r *Response) *radius.Packet {
	proxyStates := ExtractProxyStates(request)
	if r.Code != CodeAccept {
		return BuildAccessReject(request, secret, proxyStates)
	}
	vlan, _ := r.ReplyValue(AttrTunnelPrivateGroupID)
	if vlan != "" {
		if _, err := strconv.Atoi(vlan); err != nil {
			return BuildAccessReject(request, secret, proxyStates)
		}
	}
	return BuildAccessAccept(request, secret, vlan, proxyStates)
}
