package engine

import (
	"context"

	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/policy"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=engine

// Processor はトランスポートから見た判定エンジン。
type Processor interface {
	// Process は属性マップを判定する。常に非nilのDecisionを返す。
	Process(ctx context.Context, phase event.Phase, attrs map[string]string) *policy.Decision
}

// Decider は無線・有線の判定関数。
type Decider interface {
	DecideWireless(ctx context.Context, ev *event.AuthEvent) (*policy.Decision, error)
	DecideWired(ctx context.Context, ev *event.AuthEvent) (*policy.Decision, error)
}

// Recorder は判定結果の計測先。
type Recorder interface {
	RecordDecision(kind, outcome, reason string)
}
