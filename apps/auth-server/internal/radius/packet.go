package radius

import (
	"strconv"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
	"layeh.com/radius/rfc2866"
	"layeh.com/radius/rfc2869"
)

// 会計属性名
const (
	AttrAcctStatusType = "Acct-Status-Type"
	AttrAcctSessionID  = "Acct-Session-Id"
)

// Attributes はパケットから判定に使う属性を名前付きのマップに展開する。
// 存在しない属性はキーごと省略する。
func Attributes(p *radius.Packet) map[string]string {
	attrs := make(map[string]string)
	setString := func(name, v string) {
		if v != "" {
			attrs[name] = v
		}
	}

	setString(event.AttrUserName, rfc2865.UserName_GetString(p))
	setString(event.AttrNASIdentifier, rfc2865.NASIdentifier_GetString(p))
	setString(event.AttrCallingStationID, rfc2865.CallingStationID_GetString(p))
	setString(event.AttrNASPortID, rfc2869.NASPortID_GetString(p))
	setString(AttrAcctSessionID, rfc2866.AcctSessionID_GetString(p))

	if ip, err := rfc2865.NASIPAddress_Lookup(p); err == nil {
		attrs[event.AttrNASIPAddress] = ip.String()
	}
	if port, err := rfc2865.NASPort_Lookup(p); err == nil {
		attrs[event.AttrNASPort] = strconv.FormatUint(uint64(port), 10)
	}
	if portType, err := rfc2865.NASPortType_Lookup(p); err == nil {
		attrs[event.AttrNASPortType] = nasPortTypeName(portType)
	}
	if status, err := rfc2866.AcctStatusType_Lookup(p); err == nil {
		attrs[AttrAcctStatusType] = acctStatusName(status)
	}
	return attrs
}

func nasPortTypeName(t rfc2865.NASPortType) string {
	switch t {
	case rfc2865.NASPortType_Value_Wireless80211:
		return event.NASPortTypeWireless
	case rfc2865.NASPortType_Value_Ethernet:
		return "Ethernet"
	default:
		return strconv.FormatUint(uint64(t), 10)
	}
}

func acctStatusName(s rfc2866.AcctStatusType) string {
	switch s {
	case rfc2866.AcctStatusType_Value_Start:
		return "Start"
	case rfc2866.AcctStatusType_Value_Stop:
		return "Stop"
	case rfc2866.AcctStatusType_Value_InterimUpdate:
		return "Interim-Update"
	default:
		return strconv.FormatUint(uint64(s), 10)
	}
}
