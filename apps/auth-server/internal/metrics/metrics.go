// Package metrics はauth-serverのPrometheusメトリクスを提供する。
package metrics

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics は判定・ディレクトリ呼び出し・自動登録のメトリクスを保持する。
type Metrics struct {
	registry *prometheus.Registry

	decisionsTotal     *prometheus.CounterVec
	directoryCalls     *prometheus.CounterVec
	directoryLatency   *prometheus.HistogramVec
	registrationsTotal *prometheus.CounterVec
}

// New は新しいMetricsを生成する。登録はRegisterで行う。
func New() *Metrics {
	return &Metrics{
		registry: prometheus.NewRegistry(),

		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authsrv_decisions_total",
				Help: "Total number of access decisions",
			},
			[]string{"kind", "outcome", "reason"},
		),

		directoryCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authsrv_directory_calls_total",
				Help: "Total number of directory backend calls",
			},
			[]string{"op", "result"},
		),

		directoryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "authsrv_directory_latency_seconds",
				Help:    "Directory backend call latency in seconds",
				Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"op"},
		),

		registrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authsrv_registrations_total",
				Help: "Total number of interface auto-registration attempts",
			},
			[]string{"result"},
		),
	}
}

// Register は全メトリクスを内部レジストリに登録する。
func (m *Metrics) Register() error {
	collectors := []prometheus.Collector{
		m.decisionsTotal,
		m.directoryCalls,
		m.directoryLatency,
		m.registrationsTotal,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	}

	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			// 二重登録は無視する
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}
	return nil
}

// Handler は/metrics用のHTTPハンドラを返す。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordDecision は判定結果を記録する。
// 理由ラベルは":"以降の可変部分を落として基数を抑える。
func (m *Metrics) RecordDecision(kind, outcome, reason string) {
	m.decisionsTotal.WithLabelValues(kind, outcome, ReasonLabel(reason)).Inc()
}

// ObserveDirectoryCall はdirectory.Recorderを実装する。
func (m *Metrics) ObserveDirectoryCall(op, result string, elapsed time.Duration) {
	m.directoryCalls.WithLabelValues(op, result).Inc()
	m.directoryLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordRegistration は自動登録の結果を記録する。
func (m *Metrics) RecordRegistration(result string) {
	m.registrationsTotal.WithLabelValues(result).Inc()
}

// ReasonLabel は判定理由をメトリクスラベル用に正規化する。
func ReasonLabel(reason string) string {
	if head, _, ok := strings.Cut(reason, ":"); ok {
		return head
	}
	return reason
}
