// Package radius は判定のRADIUS属性への変換と、ネイティブリスナー用のパケット処理を提供する。
package radius

import (
	"strconv"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/policy"
)

// 応答属性名（FreeRADIUS辞書名）
const (
	AttrNTPassword           = "NT-Password"
	AttrTunnelType           = "Tunnel-Type"
	AttrTunnelMediumType     = "Tunnel-Medium-Type"
	AttrTunnelPrivateGroupID = "Tunnel-Private-Group-Id"

	TunnelTypeVLAN      = "VLAN"
	TunnelMediumIEEE802 = "IEEE-802"

	tunnelTypeVLANValue = 13
)

// ResultCode はトランスポートへ返す結果コード。
type ResultCode int

const (
	// CodeReject は認証拒否
	CodeReject ResultCode = iota
	// CodeAccept は認証許可
	CodeAccept
	// CodeNoop は判定なし
	CodeNoop
)

// String はログ用の名前を返す。
func (c ResultCode) String() string {
	switch c {
	case CodeAccept:
		return "accept"
	case CodeReject:
		return "reject"
	case CodeNoop:
		return "noop"
	default:
		return "unknown"
	}
}

// Pair は順序付き属性ペア。
type Pair struct {
	Name  string
	Value string
}

// Response はトランスポートへ返す三つ組 (結果コード, reply属性, control属性)。
type Response struct {
	Code    ResultCode
	Reply   []Pair
	Control []Pair
}

// ReplyValue はreply属性の値を返す。
func (r *Response) ReplyValue(name string) (string, bool) {
	return lookup(r.Reply, name)
}

// ControlValue はcontrol属性の値を返す。
func (r *Response) ControlValue(name string) (string, bool) {
	return lookup(r.Control, name)
}

// EncodeOptions はエンコードの挙動を切り替える。
type EncodeOptions struct {
	// QuarantineOnReject はQuarantineVlanを持つRejectを隔離VLANへのAcceptとして返す
	QuarantineOnReject bool
}

// Encode は判定を応答に変換する。理由はトランスポートに出さない。
func Encode(d *policy.Decision, opts EncodeOptions) *Response {
	switch d.Outcome {
	case policy.OutcomeAccept:
		resp := &Response{Code: CodeAccept}
		if d.VlanID != nil {
			resp.Reply = vlanPairs(*d.VlanID)
		}
		if d.Credential != "" {
			resp.Control = []Pair{{Name: AttrNTPassword, Value: d.Credential}}
		}
		return resp
	case policy.OutcomeNoop:
		return &Response{Code: CodeNoop}
	default:
		if opts.QuarantineOnReject && d.QuarantineVlan != nil {
			return &Response{Code: CodeAccept, Reply: vlanPairs(*d.QuarantineVlan)}
		}
		return &Response{Code: CodeReject}
	}
}

// vlanPairs はVLAN割り当て用のTunnel属性を返す。
func vlanPairs(vlan int) []Pair {
	return []Pair{
		{Name: AttrTunnelType, Value: TunnelTypeVLAN},
		{Name: AttrTunnelMediumType, Value: TunnelMediumIEEE802},
		{Name: AttrTunnelPrivateGroupID, Value: strconv.Itoa(vlan)},
	}
}

func lookup(pairs []Pair, name string) (string, bool) {
	for _, p := range pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
