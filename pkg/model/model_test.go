package model

import "testing"

func TestNASIsSwitch(t *testing.T) {
	tests := []struct {
		name string
		nas  NAS
		want bool
	}{
		{"switch", NAS{Name: "sw-01", Kind: NASKindSwitch, SwitchID: "1"}, true},
		{"controller", NAS{Name: "wlc-01", Kind: NASKindController}, false},
		{"empty kind", NAS{Name: "unknown"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.nas.IsSwitch(); got != tt.want {
				t.Errorf("IsSwitch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPortPolicyVLAN(t *testing.T) {
	tests := []struct {
		policy   PortPolicy
		wantVLAN int
		wantOK   bool
	}{
		{PortPolicyNo, 0, false},
		{PortPolicyBloq, 0, false},
		{PortPolicyStrict, 0, false},
		{PortPolicyCommon, 0, false},
		{"42", 42, true},
		{"4094", 4094, true},
		{"strict", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			vlan, ok := tt.policy.VLAN()
			if vlan != tt.wantVLAN || ok != tt.wantOK {
				t.Errorf("VLAN() = (%d, %v), want (%d, %v)", vlan, ok, tt.wantVLAN, tt.wantOK)
			}
		})
	}
}

func TestPortHasRoom(t *testing.T) {
	if (&Port{Room: "A101"}).HasRoom() != true {
		t.Error("HasRoom() = false, want true")
	}
	if (&Port{}).HasRoom() != false {
		t.Error("HasRoom() = true, want false")
	}
}

func TestNewInterface(t *testing.T) {
	iface := NewInterface("aa:bb:cc:dd:ee:ff", "10.0.0.5", "alice", "2026-01-01T00:00:00Z")

	if !iface.Active {
		t.Error("Active = false, want true")
	}
	if iface.MAC != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("MAC = %q, want %q", iface.MAC, "aa:bb:cc:dd:ee:ff")
	}
	if !iface.OwnedBy("alice") {
		t.Error("OwnedBy(alice) = false, want true")
	}
	if iface.OwnedBy("bob") {
		t.Error("OwnedBy(bob) = true, want false")
	}
}
