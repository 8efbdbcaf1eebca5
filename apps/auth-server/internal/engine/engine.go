// Package engine はフェーズに応じて判定関数を呼び分け、エラーを判定に変換する。
package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/policy"
	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
	pkglogging "github.com/oyaguma3/portauth-radius-server/pkg/logging"
)

// 判定ログ・メトリクスのkindラベル
const (
	kindMalformed  = "malformed"
	kindAccounting = "accounting"
)

type nopRecorder struct{}

func (nopRecorder) RecordDecision(string, string, string) {}

// EngineImpl はProcessorの実装
type EngineImpl struct {
	decider Decider
	rec     Recorder
	masker  *pkglogging.Masker
}

// NewEngine は新しいエンジンを生成する
func NewEngine(decider Decider, rec Recorder, masker *pkglogging.Masker) *EngineImpl {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &EngineImpl{
		decider: decider,
		rec:     rec,
		masker:  masker,
	}
}

// Process は1リクエストを判定する。
// トレースIDは呼び出し元がcontextに設定する。
func (e *EngineImpl) Process(ctx context.Context, phase event.Phase, attrs map[string]string) *policy.Decision {
	traceID := logging.TraceID(ctx)
	start := time.Now()

	if phase == event.PhaseAccounting {
		d := policy.Noop(policy.ReasonAccountingAcknowledged)
		slog.Debug("accounting event acknowledged",
			"event_id", "ACCT_RECEIVED",
			"trace_id", traceID,
			"status_type", attrs["Acct-Status-Type"],
		)
		e.rec.RecordDecision(kindAccounting, d.Outcome.String(), d.Reason)
		return d
	}

	ev, err := event.Normalize(phase, attrs)
	if err != nil {
		d := policy.Reject(policy.ReasonMalformed)
		slog.Warn("malformed request",
			"event_id", "EVENT_MALFORMED",
			"trace_id", traceID,
			"phase", string(phase),
			"error", err.Error(),
		)
		e.rec.RecordDecision(kindMalformed, d.Outcome.String(), d.Reason)
		return d
	}

	var d *policy.Decision
	switch {
	case ev.IsWireless() && phase == event.PhaseAuthorize:
		d, err = e.decider.DecideWireless(ctx, ev)
	case !ev.IsWireless() && phase == event.PhasePostAuth:
		d, err = e.decider.DecideWired(ctx, ev)
	default:
		d = policy.Noop(policy.ReasonPhaseNotHandled)
	}

	if err != nil {
		if !errors.Is(err, apperr.ErrDirectoryUnavailable) {
			slog.Error("unexpected decision error",
				"event_id", "DECISION_ERR",
				"trace_id", traceID,
				"error", err.Error(),
			)
		}
		d = policy.Reject(policy.ReasonDirectoryUnavailable)
	}

	e.logDecision(ctx, ev, d, time.Since(start))
	e.rec.RecordDecision(ev.Kind.String(), d.Outcome.String(), d.Reason)
	return d
}

// logDecision はリクエストごとに1行の判定ログを出力する。
func (e *EngineImpl) logDecision(ctx context.Context, ev *event.AuthEvent, d *policy.Decision, elapsed time.Duration) {
	args := []any{
		pkglogging.WithTraceID(logging.TraceID(ctx)),
		pkglogging.WithEventID("AUTH_DECISION"),
		e.masker.MACAttr(ev.CallingStationID),
		e.masker.UserAttr(ev.Username),
		pkglogging.WithPhase(string(ev.Phase)),
		"kind", ev.Kind.String(),
		pkglogging.WithNAS(ev.NASIdentifier),
		pkglogging.WithOutcome(d.Outcome.String()),
		pkglogging.WithReason(d.Reason),
		pkglogging.WithLatency(elapsed.Milliseconds()),
	}
	if !ev.IsWireless() {
		args = append(args, "port", ev.Port)
	}
	if d.VlanID != nil {
		args = append(args, "vlan", *d.VlanID)
	}
	if d.QuarantineVlan != nil {
		args = append(args, "quarantine_vlan", *d.QuarantineVlan)
	}

	level := slog.LevelInfo
	if d.Reason == policy.ReasonDirectoryUnavailable {
		level = slog.LevelWarn
	}
	slog.Log(ctx, level, "access decision", args...)
}

var _ Processor = (*EngineImpl)(nil)
