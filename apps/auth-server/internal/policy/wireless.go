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

// DecideWireless は802.1X無線接続を判定する。
// 返り値は常にAcceptかRejectで、エラーはディレクトリ障害のみ。
func (p *Policy) DecideWireless(ctx context.Context, ev *event.AuthEvent) (*Decision, error) {
	user, err := p.dir.ResolveUserByName(ctx, ev.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return Reject(ReasonUnknownUser), nil
	}
	if !user.HasAccess {
		return Reject(ReasonNoAccess), nil
	}

	iface, err := p.dir.ResolveInterfaceByMAC(ctx, ev.CallingStationID)
	if err != nil {
		return nil, err
	}
	if iface != nil {
		return p.knownWireless(ctx, ev, user, iface), nil
	}

	if !p.cfg.MacAutoCapture {
		return Reject(ReasonAutoCaptureDisabled), nil
	}

	nas, err := p.dir.ResolveNAS(ctx, ev.NASIdentifier)
	if err != nil {
		return nil, err
	}
	hint, ok := directory.PoolHint(nas)
	if !ok {
		return Reject(ReasonNASNotEligible), nil
	}

	res, err := p.reg.Register(ctx, ev.CallingStationID, user, hint)
	var failure *registration.Failure
	if errors.As(err, &failure) {
		return Reject(ReasonAutoRegFailed + ": " + failure.Reason), nil
	}
	if err != nil {
		return nil, err
	}
	if res.AlreadyKnown {
		return p.knownWireless(ctx, ev, user, res.Interface), nil
	}
	return AcceptCredential(user.PwdNTLM, ReasonAutoRegistered), nil
}

// knownWireless は登録済みインターフェースに対する判定を行う。
func (p *Policy) knownWireless(ctx context.Context, ev *event.AuthEvent, user *model.User, iface *model.Interface) *Decision {
	if !iface.OwnedBy(user.Name) {
		return Reject(ReasonForeignMAC)
	}
	if !iface.Active {
		return Reject(ReasonInterfaceDisabled)
	}
	if iface.IPv4 == "" && p.reassignIPv4(ctx, ev) {
		return AcceptCredential(user.PwdNTLM, ReasonIPv4Reassigned)
	}
	return AcceptCredential(user.PwdNTLM, ReasonKnownDevice)
}

// reassignIPv4 はIPv4を失ったインターフェースにアドレスを払い出す。
// 失敗しても判定は変えない。
func (p *Policy) reassignIPv4(ctx context.Context, ev *event.AuthEvent) bool {
	nas, err := p.dir.ResolveNAS(ctx, ev.NASIdentifier)
	if err != nil {
		p.logReassignFailure(ctx, ev, err)
		return false
	}
	hint, ok := directory.PoolHint(nas)
	if !ok {
		return false
	}
	iface, err := p.dir.AssignIPv4(ctx, ev.CallingStationID, hint)
	if err != nil {
		p.logReassignFailure(ctx, ev, err)
		return false
	}
	return iface != nil && iface.IPv4 != ""
}

func (p *Policy) logReassignFailure(ctx context.Context, ev *event.AuthEvent, err error) {
	slog.Warn("ipv4 reassignment failed",
		"event_id", "IPV4_REASSIGN_ERR",
		"trace_id", logging.TraceID(ctx),
		"mac", p.masker.MAC(ev.CallingStationID),
		"error", err.Error(),
	)
}
