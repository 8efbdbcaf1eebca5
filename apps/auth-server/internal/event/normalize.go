package event

import (
	"strconv"
	"strings"

	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
)

// Normalize は属性マップからAuthEventを構築する。
// 失敗時はapperr.ErrMalformedEventにマッチするエラーを返す。副作用なし。
func Normalize(phase Phase, attrs map[string]string) (*AuthEvent, error) {
	get := func(name string) string {
		return unquote(strings.TrimSpace(attrs[name]))
	}

	ev := &AuthEvent{
		Phase:         phase,
		NASIdentifier: get(AttrNASIPAddress),
	}
	if ev.NASIdentifier == "" {
		ev.NASIdentifier = get(AttrNASIdentifier)
	}

	rawMAC := get(AttrCallingStationID)
	if rawMAC == "" {
		return nil, apperr.NewValidationError(AttrCallingStationID, "missing")
	}
	mac, err := CanonicalMAC(rawMAC)
	if err != nil {
		return nil, apperr.NewValidationError(AttrCallingStationID, err.Error())
	}
	ev.CallingStationID = mac

	if get(AttrNASPortType) == NASPortTypeWireless {
		ev.Kind = KindWireless
		user, _, _ := strings.Cut(get(AttrUserName), "@")
		if user == "" {
			return nil, apperr.NewValidationError(AttrUserName, "missing")
		}
		ev.Username = user
		return ev, nil
	}

	ev.Kind = KindWiredPostAuth
	if ev.NASIdentifier == "" {
		return nil, apperr.NewValidationError(AttrNASIdentifier, "missing NAS-IP-Address and NAS-Identifier")
	}
	rawPort := get(AttrNASPortID)
	if rawPort == "" {
		rawPort = get(AttrNASPort)
	}
	if rawPort == "" {
		return nil, apperr.NewValidationError(AttrNASPortID, "missing NAS-Port-Id and NAS-Port")
	}
	port, err := PortNumber(rawPort)
	if err != nil {
		return nil, apperr.NewValidationError(AttrNASPortID, err.Error())
	}
	ev.Port = port
	// ユーザー名は有線では使用しないが、ログ用に保持する
	ev.Username, _, _ = strings.Cut(get(AttrUserName), "@")
	return ev, nil
}

// PortNumber はNAS-Port-Idからポート番号を取り出す。
// 先頭の"."区切り要素の最後の"/"区切り要素の末尾2文字を整数として解釈する。
// 例: "GigabitEthernet1/0/12" → 12, "ge-0/0/5.0" → 5, "Gi1/0/112" → 12
func PortNumber(portID string) (int, error) {
	head, _, _ := strings.Cut(portID, ".")
	seg := head
	if i := strings.LastIndex(head, "/"); i >= 0 {
		seg = head[i+1:]
	}
	if len(seg) > 2 {
		seg = seg[len(seg)-2:]
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, errInvalidPort
	}
	return n, nil
}

// unquote は前後の二重引用符を1組だけ除去する。
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
