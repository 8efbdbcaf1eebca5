package radius

import (
	"net"
	"testing"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	radiuspkg "layeh.com/radius"
	"layeh.com/radius/rfc2865"
	"layeh.com/radius/rfc2866"
	"layeh.com/radius/rfc2869"
)

func TestAttributesWired(t *testing.T) {
	p := radiuspkg.New(radiuspkg.CodeAccessRequest, []byte("secret"))
	_ = rfc2865.UserName_SetString(p, "aabbcc000001")
	_ = rfc2865.NASIPAddress_Set(p, net.ParseIP("10.1.0.1"))
	_ = rfc2865.NASPort_Set(p, 50012)
	_ = rfc2865.NASPortType_Set(p, rfc2865.NASPortType_Value_Ethernet)
	_ = rfc2869.NASPortID_SetString(p, "GigabitEthernet1/0/12")
	_ = rfc2865.CallingStationID_SetString(p, "AA-BB-CC-00-00-01")

	attrs := Attributes(p)

	want := map[string]string{
		event.AttrUserName:         "aabbcc000001",
		event.AttrNASIPAddress:     "10.1.0.1",
		event.AttrNASPort:          "50012",
		event.AttrNASPortType:      "Ethernet",
		event.AttrNASPortID:        "GigabitEthernet1/0/12",
		event.AttrCallingStationID: "AA-BB-CC-00-00-01",
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("attrs[%q] = %q, want %q", k, attrs[k], v)
		}
	}
	if _, ok := attrs[event.AttrNASIdentifier]; ok {
		t.Error("absent NAS-Identifier should be omitted")
	}
}

func TestAttributesWireless(t *testing.T) {
	p := radiuspkg.New(radiuspkg.CodeAccessRequest, []byte("secret"))
	_ = rfc2865.UserName_SetString(p, "alice@example.org")
	_ = rfc2865.NASIdentifier_SetString(p, "wlc-1")
	_ = rfc2865.NASPortType_Set(p, rfc2865.NASPortType_Value_Wireless80211)
	_ = rfc2865.CallingStationID_SetString(p, "aa:bb:cc:00:00:01")

	attrs := Attributes(p)
	if attrs[event.AttrNASPortType] != event.NASPortTypeWireless {
		t.Errorf("NAS-Port-Type = %q, want %q", attrs[event.AttrNASPortType], event.NASPortTypeWireless)
	}
	if attrs[event.AttrNASIdentifier] != "wlc-1" {
		t.Errorf("NAS-Identifier = %q", attrs[event.AttrNASIdentifier])
	}

	// 正規化まで通ること
	ev, err := event.Normalize(event.PhaseAuthorize, attrs)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !ev.IsWireless() || ev.Username != "alice" {
		t.Errorf("event = %+v", ev)
	}
}

func TestAttributesAccounting(t *testing.T) {
	p := radiuspkg.New(radiuspkg.CodeAccountingRequest, []byte("secret"))
	_ = rfc2866.AcctStatusType_Set(p, rfc2866.AcctStatusType_Value_InterimUpdate)
	_ = rfc2866.AcctSessionID_SetString(p, "sess-0001")

	attrs := Attributes(p)
	if attrs[AttrAcctStatusType] != "Interim-Update" {
		t.Errorf("Acct-Status-Type = %q", attrs[AttrAcctStatusType])
	}
	if attrs[AttrAcctSessionID] != "sess-0001" {
		t.Errorf("Acct-Session-Id = %q", attrs[AttrAcctSessionID])
	}
}
