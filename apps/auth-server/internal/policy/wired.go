package policy

import (
	"context"
	"errors"
	"log/slog"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/registration"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

// DecideWired はスイッチポートへの接続を判定する。
// NASまたはポートが未登録の場合はdefaultOkVlanで許可する（未構築スイッチの救済）。
func (p *Policy) DecideWired(ctx context.Context, ev *event.AuthEvent) (*Decision, error) {
	nas, err := p.dir.ResolveNAS(ctx, ev.NASIdentifier)
	if err != nil {
		return nil, err
	}

	switch n := nas.(type) {
	case nil:
		return p.failOpen(ctx, ev, "nas"), nil
	case *directory.Switch:
		return p.decidePort(ctx, ev, n)
	default:
		slog.Debug("wired event from non-switch NAS",
			"event_id", "NAS_NOT_SWITCH",
			"trace_id", logging.TraceID(ctx),
			"nas", ev.NASIdentifier,
			"nas_kind", directory.KindOf(n),
		)
		return Noop(ReasonNotASwitch), nil
	}
}

// failOpen は未登録のNAS・ポートをdefaultOkVlanで通す。他の分岐は全てfail-closed。
func (p *Policy) failOpen(ctx context.Context, ev *event.AuthEvent, missing string) *Decision {
	slog.Warn("unregistered switch or port, granting default vlan",
		"event_id", "WIRED_FAIL_OPEN",
		"trace_id", logging.TraceID(ctx),
		"nas", ev.NASIdentifier,
		"port", ev.Port,
		"missing", missing,
	)
	return AcceptVLAN(p.cfg.DefaultOkVlan, ReasonFailOpen)
}

func (p *Policy) decidePort(ctx context.Context, ev *event.AuthEvent, sw *directory.Switch) (*Decision, error) {
	port, err := p.dir.ResolvePort(ctx, sw, ev.Port)
	if err != nil {
		return nil, err
	}
	if port == nil {
		return p.failOpen(ctx, ev, "port"), nil
	}

	switch port.Policy {
	case model.PortPolicyNo:
		return AcceptVLAN(p.okVlan(port), ReasonNoAuthRequired), nil
	case model.PortPolicyBloq:
		return Reject(ReasonPortDisabled), nil
	case model.PortPolicyStrict:
		if !port.HasRoom() {
			return RejectQuarantine(p.cfg.DefaultNokVlan, ReasonUnknownRoom), nil
		}
		occupant, err := p.dir.ResolveRoomOccupant(ctx, port.Room)
		if err != nil {
			return nil, err
		}
		if occupant == nil {
			return RejectQuarantine(p.cfg.DefaultNokVlan, ReasonNoResident), nil
		}
		if !occupant.HasAccess {
			return RejectQuarantine(p.cfg.DefaultNokVlan, ReasonResidentNoAccess), nil
		}
		return p.checkMAC(ctx, ev, sw, port, occupant)
	case model.PortPolicyCommon:
		return p.checkMAC(ctx, ev, sw, port, nil)
	}

	if vlan, ok := port.Policy.VLAN(); ok {
		return AcceptVLAN(vlan, ReasonVlanOverride), nil
	}
	slog.Warn("invalid port policy",
		"event_id", "PORT_POLICY_INVALID",
		"trace_id", logging.TraceID(ctx),
		"switch_id", sw.ID,
		"port", port.Number,
		"policy", string(port.Policy),
	)
	return Reject(ReasonInvalidPolicy), nil
}

// checkMAC はSTRICT/COMMON共通のMAC確認を行う。
// occupantはSTRICTで確認済みの居住者（COMMONではnil）。
func (p *Policy) checkMAC(ctx context.Context, ev *event.AuthEvent, sw *directory.Switch, port *model.Port, occupant *model.User) (*Decision, error) {
	iface, err := p.dir.ResolveInterfaceByMAC(ctx, ev.CallingStationID)
	if err != nil {
		return nil, err
	}

	if iface == nil {
		if !p.cfg.MacAutoCapture {
			return RejectQuarantine(p.cfg.DefaultNokVlan, ReasonUnknownDevice), nil
		}
		if !port.HasRoom() {
			return Reject(ReasonUnknownRoomAndDevice), nil
		}
		if occupant == nil {
			occupant, err = p.dir.ResolveRoomOccupant(ctx, port.Room)
			if err != nil {
				return nil, err
			}
		}
		if occupant == nil {
			return Reject(ReasonUnknownDeviceNoResident), nil
		}
		if !occupant.HasAccess {
			return Reject(ReasonUnknownDeviceResidentNoAccess), nil
		}

		hint, _ := directory.PoolHint(sw)
		res, err := p.reg.Register(ctx, ev.CallingStationID, occupant, hint)
		var failure *registration.Failure
		if errors.As(err, &failure) {
			slog.Info("wired auto-registration failed",
				"event_id", "AUTOREG_FAILED",
				"trace_id", logging.TraceID(ctx),
				"mac", p.masker.MAC(ev.CallingStationID),
				"room", port.Room,
				"reason", failure.Reason,
			)
			return Reject(ReasonAutoRegFailed), nil
		}
		if err != nil {
			return nil, err
		}
		if !res.AlreadyKnown {
			return AcceptVLAN(p.cfg.DefaultOkVlan, ReasonAutoRegistered), nil
		}
		iface = res.Interface
	}

	if !iface.Active {
		return RejectQuarantine(p.cfg.DefaultNokVlan, ReasonDeviceDisabled), nil
	}
	return AcceptVLAN(p.okVlan(port), ReasonKnownDevice), nil
}

// okVlan はポートの強制VLAN、未設定ならdefaultOkVlanを返す。
func (p *Policy) okVlan(port *model.Port) int {
	if port.VlanForce != nil {
		return *port.VlanForce
	}
	return p.cfg.DefaultOkVlan
}
