// Package registration は未登録MACの自動登録を行う。
package registration

import (
	"context"
	"errors"
	"log/slog"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
	pkglogging "github.com/oyaguma3/portauth-radius-server/pkg/logging"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

// 登録結果ラベル
const (
	ResultCreated       = "created"
	ResultAlreadyKnown  = "already_known"
	ResultIneligible    = "ineligible"
	ResultPoolExhausted = "pool_exhausted"
	ResultQuota         = "quota"
	ResultRefused       = "refused"
	ResultError         = "error"
)

// ReasonOwnerIneligible は所有者に接続権が無い場合の失敗理由
const ReasonOwnerIneligible = "owner ineligible"

// Recorder は登録結果の計測先。
type Recorder interface {
	RecordRegistration(result string)
}

type nopRecorder struct{}

func (nopRecorder) RecordRegistration(string) {}

// Result は登録結果。
// AlreadyKnownは同時登録に負け、既存の行を返した場合にtrue。
type Result struct {
	Interface    *model.Interface
	AlreadyKnown bool
}

// Failure は業務上の登録失敗。Reasonは判定理由に使用される。
type Failure struct {
	Reason string
}

func (f *Failure) Error() string {
	return "registration failed: " + f.Reason
}

// Registrar はディレクトリに対して自動登録を行う。
type Registrar struct {
	dir         directory.Directory
	maxPerOwner int
	rec         Recorder
	masker      *pkglogging.Masker
}

// NewRegistrar は新しいRegistrarを生成する。maxPerOwnerが0の場合は無制限。
func NewRegistrar(dir directory.Directory, maxPerOwner int, rec Recorder, masker *pkglogging.Masker) *Registrar {
	if rec == nil {
		rec = nopRecorder{}
	}
	if masker == nil {
		masker = pkglogging.NewMasker(true)
	}
	return &Registrar{
		dir:         dir,
		maxPerOwner: maxPerOwner,
		rec:         rec,
		masker:      masker,
	}
}

// Register はmacをownerに紐付けて登録する。
// 業務上の失敗は*Failure、ディレクトリ障害はそれ以外のエラーで返す。
func (r *Registrar) Register(ctx context.Context, mac string, owner *model.User, poolHint string) (*Result, error) {
	if owner == nil || !owner.HasAccess {
		r.rec.RecordRegistration(ResultIneligible)
		return nil, &Failure{Reason: ReasonOwnerIneligible}
	}

	iface, err := r.dir.RegisterInterface(ctx, &directory.RegistrationRequest{
		MAC:         mac,
		Owner:       owner.Name,
		PoolHint:    poolHint,
		MaxPerOwner: r.maxPerOwner,
	})
	if err == nil {
		r.rec.RecordRegistration(ResultCreated)
		slog.Info("interface auto-registered",
			"event_id", "IFACE_REGISTERED",
			"trace_id", logging.TraceID(ctx),
			"mac", r.masker.MAC(mac),
			"user", r.masker.User(owner.Name),
			"ipv4", iface.IPv4,
		)
		return &Result{Interface: iface}, nil
	}

	if errors.Is(err, apperr.ErrRegistrationConflict) {
		return r.recoverConflict(ctx, mac)
	}

	if failure := toFailure(err); failure != nil {
		r.rec.RecordRegistration(resultLabel(err))
		slog.Info("interface auto-registration refused",
			"event_id", "IFACE_REGISTER_REFUSED",
			"trace_id", logging.TraceID(ctx),
			"mac", r.masker.MAC(mac),
			"reason", failure.Reason,
		)
		return nil, failure
	}

	r.rec.RecordRegistration(ResultError)
	return nil, err
}

// recoverConflict は同時登録で負けた場合に既存の行を再取得する。
func (r *Registrar) recoverConflict(ctx context.Context, mac string) (*Result, error) {
	existing, err := r.dir.ResolveInterfaceByMAC(ctx, mac)
	if err != nil {
		r.rec.RecordRegistration(ResultError)
		return nil, err
	}
	if existing == nil {
		// 競合直後に削除された
		r.rec.RecordRegistration(ResultRefused)
		return nil, &Failure{Reason: "write conflict"}
	}

	r.rec.RecordRegistration(ResultAlreadyKnown)
	slog.Debug("registration conflict resolved to existing interface",
		"event_id", "IFACE_REGISTER_CONFLICT",
		"trace_id", logging.TraceID(ctx),
		"mac", r.masker.MAC(mac),
	)
	return &Result{Interface: existing, AlreadyKnown: true}, nil
}

// toFailure はディレクトリの業務エラーをFailureに変換する。障害の場合はnil。
func toFailure(err error) *Failure {
	var refused *directory.RefusedError
	switch {
	case errors.Is(err, apperr.ErrPoolExhausted):
		return &Failure{Reason: apperr.ErrPoolExhausted.Error()}
	case errors.Is(err, apperr.ErrQuotaExceeded):
		return &Failure{Reason: apperr.ErrQuotaExceeded.Error()}
	case errors.As(err, &refused):
		return &Failure{Reason: refused.Reason}
	case errors.Is(err, apperr.ErrRegistrationRefused):
		return &Failure{Reason: "registration refused"}
	}
	return nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, apperr.ErrPoolExhausted):
		return ResultPoolExhausted
	case errors.Is(err, apperr.ErrQuotaExceeded):
		return ResultQuota
	default:
		return ResultRefused
	}
}
