package event

// 参照するRADIUS属性名（FreeRADIUS辞書の表記）
const (
	AttrUserName         = "User-Name"
	AttrNASIPAddress     = "NAS-IP-Address"
	AttrNASIdentifier    = "NAS-Identifier"
	AttrNASPort          = "NAS-Port"
	AttrNASPortID        = "NAS-Port-Id"
	AttrNASPortType      = "NAS-Port-Type"
	AttrCallingStationID = "Calling-Station-Id"
)

// NASPortTypeWireless は無線イベントを示すNAS-Port-Typeの値。
const NASPortTypeWireless = "Wireless-802.11"
