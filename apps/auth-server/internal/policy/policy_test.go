package policy

import (
	"context"
	"time"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/registration"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

const (
	okVlan  = 10
	nokVlan = 99

	swIP  = "10.1.0.1"
	wlcIP = "10.2.0.1"

	macKnown    = "aa:bb:cc:00:00:01"
	macDisabled = "aa:bb:cc:00:00:02"
	macBob      = "aa:bb:cc:00:00:03"
	macNoIPv4   = "aa:bb:cc:00:00:04"
	macNew      = "aa:bb:cc:00:00:ff"
)

func intPtr(v int) *int { return &v }

// newFixture は判定テスト用のディレクトリを構築する。
func newFixture() *directory.MemoryStore {
	return directory.NewMemoryStore().
		AddNAS(model.NAS{Name: "sw-a1", IPv4: swIP, Kind: model.NASKindSwitch, SwitchID: "7"}).
		AddNAS(model.NAS{Name: "wlc-1", IPv4: wlcIP, Kind: model.NASKindController}).
		AddUser(model.User{Name: "alice", HasAccess: true, PwdNTLM: "HASH_A"}).
		AddUser(model.User{Name: "bob", HasAccess: true, PwdNTLM: "HASH_B"}).
		AddUser(model.User{Name: "carol", HasAccess: false, PwdNTLM: "HASH_C"}).
		AddPort(model.Port{SwitchID: "7", Number: 1, Policy: model.PortPolicyNo}).
		AddPort(model.Port{SwitchID: "7", Number: 2, Room: "B02", Policy: model.PortPolicyBloq}).
		AddPort(model.Port{SwitchID: "7", Number: 3, Room: "B03", Policy: model.PortPolicyStrict}).
		AddPort(model.Port{SwitchID: "7", Number: 4, Policy: model.PortPolicyStrict}).
		AddPort(model.Port{SwitchID: "7", Number: 5, Room: "B05", Policy: model.PortPolicyStrict}).
		AddPort(model.Port{SwitchID: "7", Number: 6, Room: "B06", Policy: model.PortPolicyStrict}).
		AddPort(model.Port{SwitchID: "7", Number: 7, Room: "B07", Policy: model.PortPolicyCommon}).
		AddPort(model.Port{SwitchID: "7", Number: 8, Policy: model.PortPolicyCommon}).
		AddPort(model.Port{SwitchID: "7", Number: 9, Room: "B09", Policy: "42"}).
		AddPort(model.Port{SwitchID: "7", Number: 10, Policy: model.PortPolicyNo, VlanForce: intPtr(30)}).
		AddPort(model.Port{SwitchID: "7", Number: 11, Room: "B11", Policy: model.PortPolicyCommon}).
		AddPort(model.Port{SwitchID: "7", Number: 12, Room: "B12", Policy: model.PortPolicyCommon}).
		AddPort(model.Port{SwitchID: "7", Number: 13, Policy: "garbage"}).
		AddPort(model.Port{SwitchID: "7", Number: 14, Room: "B14", Policy: model.PortPolicyStrict, VlanForce: intPtr(30)}).
		SetOccupant("B03", "alice").
		SetOccupant("B06", "carol").
		SetOccupant("B07", "alice").
		SetOccupant("B11", "carol").
		SetOccupant("B14", "alice").
		AddInterface(model.Interface{MAC: macKnown, IPv4: "10.1.10.1", Owner: "alice", Active: true}).
		AddInterface(model.Interface{MAC: macDisabled, IPv4: "10.1.10.2", Owner: "alice", Active: false}).
		AddInterface(model.Interface{MAC: macBob, IPv4: "10.2.10.3", Owner: "bob", Active: true}).
		AddInterface(model.Interface{MAC: macNoIPv4, Owner: "alice", Active: true}).
		AddPool(swIP, "10.1.10.50", "10.1.10.51").
		AddPool(wlcIP, "10.2.10.50")
}

func newTestPolicy(store *directory.MemoryStore, autoCapture bool) *Policy {
	dir := directory.NewAdapter(store, "memory", time.Second, nil)
	cfg := Config{DefaultOkVlan: okVlan, DefaultNokVlan: nokVlan, MacAutoCapture: autoCapture}
	return New(cfg, dir, registration.NewRegistrar(dir, 0, nil, nil), nil)
}

func wiredEvent(port int, mac string) *event.AuthEvent {
	return &event.AuthEvent{
		Kind:             event.KindWiredPostAuth,
		Phase:            event.PhasePostAuth,
		NASIdentifier:    swIP,
		CallingStationID: mac,
		Port:             port,
	}
}

func wirelessEvent(user, mac string) *event.AuthEvent {
	return &event.AuthEvent{
		Kind:             event.KindWireless,
		Phase:            event.PhaseAuthorize,
		NASIdentifier:    wlcIP,
		CallingStationID: mac,
		Username:         user,
	}
}

var bg = context.Background()
