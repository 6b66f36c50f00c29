package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// 单个交易对扫描结果
const (
	OutcomeOK           = "ok"
	OutcomePending      = "pending"
	OutcomeTransport    = "transport"
	OutcomeInsufficient = "insufficient"
	OutcomeAnomaly      = "anomaly"
	OutcomeCanceled     = "canceled"
)

const (
	NotifySent   = "sent"
	NotifyFailed = "failed"
)

// ScanMetrics 一次进程内所有扫描周期共用. nil 接收者上的方法都是空操作
type ScanMetrics struct {
	registry *prometheus.Registry

	Instruments   *prometheus.CounterVec
	Matches       prometheus.Gauge
	CycleDuration prometheus.Histogram
	Cycles        *prometheus.CounterVec
	Notifications *prometheus.CounterVec
}

func NewScanMetrics() *ScanMetrics {
	m := &ScanMetrics{
		registry: prometheus.NewRegistry(),
		Instruments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "amplitude_scan_instruments_total",
				Help: "Instruments scanned, by outcome",
			},
			[]string{"outcome"},
		),
		Matches: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "amplitude_scan_matches",
				Help: "Instruments above the amplitude threshold in the last cycle",
			},
		),
		CycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "amplitude_scan_cycle_duration_seconds",
				Help:    "Duration of one scan cycle",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
		),
		Cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "amplitude_scan_cycles_total",
				Help: "Scan cycles, by result",
			},
			[]string{"result"},
		),
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "amplitude_scan_notifications_total",
				Help: "Alert deliveries, by result",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.Instruments, m.Matches, m.CycleDuration, m.Cycles, m.Notifications)
	return m
}

func (m *ScanMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *ScanMetrics) ObserveInstrument(outcome string) {
	if m == nil {
		return
	}
	m.Instruments.WithLabelValues(outcome).Inc()
}

func (m *ScanMetrics) ObserveCycle(err error, matches int, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Cycles.WithLabelValues(result).Inc()
	m.CycleDuration.Observe(elapsed.Seconds())
	if err == nil {
		m.Matches.Set(float64(matches))
	}
}

func (m *ScanMetrics) ObserveNotification(result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(result).Inc()
}

// Pusher 把指标推到 Pushgateway, 适合周期性一次性任务
type Pusher struct {
	pusher *push.Pusher
}

func NewPusher(url, job string, m *ScanMetrics) *Pusher {
	if url == "" || m == nil {
		return nil
	}
	if job == "" {
		job = "amplitude_scanner"
	}
	return &Pusher{pusher: push.New(url, job).Gatherer(m.registry)}
}

func (p *Pusher) Push(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.pusher.PushContext(ctx)
}
