package directory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/config"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
	"github.com/sony/gobreaker"
)

// 操作名（メトリクスラベル・ログ用）
const (
	OpResolveNAS       = "resolve_nas"
	OpResolveUser      = "resolve_user"
	OpResolveInterface = "resolve_interface"
	OpResolvePort      = "resolve_port"
	OpResolveOccupant  = "resolve_occupant"
	OpRegister         = "register_interface"
	OpAssignIPv4       = "assign_ipv4"
)

// 呼び出し結果ラベル
const (
	ResultHit           = "hit"
	ResultMiss          = "miss"
	ResultError         = "error"
	ResultCircuitOpen   = "circuit_open"
	ResultConflict      = "conflict"
	ResultPoolExhausted = "pool_exhausted"
	ResultQuota         = "quota"
	ResultRefused       = "refused"
)

// Directory はポリシーから見たディレクトリ操作。
// 参照系は該当なしを (nil, nil) で返し、障害は apperr.ErrDirectoryUnavailable にマッチする。
type Directory interface {
	ResolveNAS(ctx context.Context, identifier string) (NAS, error)
	ResolveUserByName(ctx context.Context, name string) (*model.User, error)
	ResolveInterfaceByMAC(ctx context.Context, mac string) (*model.Interface, error)
	ResolvePort(ctx context.Context, sw *Switch, number int) (*model.Port, error)
	ResolveRoomOccupant(ctx context.Context, room string) (*model.User, error)
	RegisterInterface(ctx context.Context, req *RegistrationRequest) (*model.Interface, error)
	AssignIPv4(ctx context.Context, mac, poolHint string) (*model.Interface, error)
}

// Recorder はディレクトリ呼び出しの計測先。
type Recorder interface {
	ObserveDirectoryCall(op, result string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveDirectoryCall(string, string, time.Duration) {}

// Adapter はStoreに呼び出し期限・サーキットブレーカー・エラー変換を付与する。
type Adapter struct {
	store   Store
	backend string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker
	rec     Recorder
}

// NewAdapter は新しいAdapterを生成する。
// backendはエラー・ログ用のバックエンド名、timeoutは1呼び出しあたりの期限。
func NewAdapter(store Store, backend string, timeout time.Duration, rec Recorder) *Adapter {
	if rec == nil {
		rec = nopRecorder{}
	}
	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
					"backend", backend,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Adapter{
		store:   store,
		backend: backend,
		timeout: timeout,
		cb:      gobreaker.NewCircuitBreaker(cbSettings),
		rec:     rec,
	}
}

// ResolveNAS は名前またはIPv4でNASを解決する。
// 該当なしでループバックアドレスの場合はLocalNASを返す。
func (a *Adapter) ResolveNAS(ctx context.Context, identifier string) (NAS, error) {
	if identifier == "" {
		return nil, nil
	}
	var rec *model.NAS
	err := a.do(ctx, OpResolveNAS, func(ctx context.Context) (found bool, err error) {
		rec, err = a.store.FindNAS(ctx, identifier)
		return rec != nil, err
	})
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return fromRecord(rec), nil
	}
	if IsLoopback(identifier) {
		return &LocalNAS{Address: identifier}, nil
	}
	return nil, nil
}

// ResolveUserByName はユーザー名で利用者を解決する。
func (a *Adapter) ResolveUserByName(ctx context.Context, name string) (*model.User, error) {
	var user *model.User
	err := a.do(ctx, OpResolveUser, func(ctx context.Context) (found bool, err error) {
		user, err = a.store.FindUser(ctx, name)
		return user != nil, err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveInterfaceByMAC はMACアドレスでインターフェースを解決する。
func (a *Adapter) ResolveInterfaceByMAC(ctx context.Context, mac string) (*model.Interface, error) {
	var iface *model.Interface
	err := a.do(ctx, OpResolveInterface, func(ctx context.Context) (found bool, err error) {
		iface, err = a.store.FindInterface(ctx, mac)
		return iface != nil, err
	})
	if err != nil {
		return nil, err
	}
	return iface, nil
}

// ResolvePort はスイッチのポートを解決する。
func (a *Adapter) ResolvePort(ctx context.Context, sw *Switch, number int) (*model.Port, error) {
	var port *model.Port
	err := a.do(ctx, OpResolvePort, func(ctx context.Context) (found bool, err error) {
		port, err = a.store.FindPort(ctx, sw.ID, number)
		return port != nil, err
	})
	if err != nil {
		return nil, err
	}
	return port, nil
}

// ResolveRoomOccupant は部屋の居住者を解決する。
func (a *Adapter) ResolveRoomOccupant(ctx context.Context, room string) (*model.User, error) {
	var user *model.User
	err := a.do(ctx, OpResolveOccupant, func(ctx context.Context) (found bool, err error) {
		user, err = a.store.FindRoomOccupant(ctx, room)
		return user != nil, err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterInterface はインターフェースを原子的に登録する。
// 業務上の失敗（重複・枯渇・上限・拒否）はそのまま返す。
func (a *Adapter) RegisterInterface(ctx context.Context, req *RegistrationRequest) (*model.Interface, error) {
	var iface *model.Interface
	err := a.do(ctx, OpRegister, func(ctx context.Context) (found bool, err error) {
		iface, err = a.store.CreateInterface(ctx, req)
		return iface != nil, err
	})
	if err != nil {
		return nil, err
	}
	return iface, nil
}

// AssignIPv4 はインターフェースにIPv4を払い出す。
func (a *Adapter) AssignIPv4(ctx context.Context, mac, poolHint string) (*model.Interface, error) {
	var iface *model.Interface
	err := a.do(ctx, OpAssignIPv4, func(ctx context.Context) (found bool, err error) {
		iface, err = a.store.AssignIPv4(ctx, mac, poolHint)
		return iface != nil, err
	})
	if err != nil {
		return nil, err
	}
	return iface, nil
}

// do は期限付きでバックエンド呼び出しを実行し、結果を分類・計測する。
func (a *Adapter) do(ctx context.Context, op string, fn func(ctx context.Context) (bool, error)) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	var outcome error
	found := false

	_, err := a.cb.Execute(func() (any, error) {
		f, err := fn(ctx)
		if err != nil && isOutcome(err) {
			// 業務上の結果はCBカウントに含めない
			outcome = err
			return nil, nil
		}
		found = f
		return nil, err
	})

	result := ResultHit
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = ResultCircuitOpen
		err = apperr.NewDirectoryError(a.backend, op, ErrCircuitOpen)
	case err != nil:
		result = ResultError
		err = apperr.NewDirectoryError(a.backend, op, err)
	case outcome != nil:
		result = outcomeLabel(outcome)
		err = outcome
	case !found:
		result = ResultMiss
	}

	elapsed := time.Since(start)
	a.rec.ObserveDirectoryCall(op, result, elapsed)

	if result == ResultError || result == ResultCircuitOpen {
		slog.Warn("directory call failed",
			"event_id", "DIRECTORY_ERR",
			"trace_id", logging.TraceID(ctx),
			"op", op,
			"backend", a.backend,
			"latency_ms", elapsed.Milliseconds(),
			"error", err.Error(),
		)
	}
	return err
}
