package ioc

import (
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/metrics"
	"github.com/KNICEX/amplitude-scanner/internal/repo"
	"github.com/KNICEX/amplitude-scanner/internal/schedule"
	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/KNICEX/amplitude-scanner/internal/service/monitor"
	"github.com/KNICEX/amplitude-scanner/internal/service/notification"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

func InitAmplitudeMonitorTask(symbolSvc exchange.SymbolService, marketSvc exchange.MarketService,
	notifier notification.Notifier, symbolRepo repo.SymbolRepo,
	m *metrics.ScanMetrics, pusher *metrics.Pusher) *monitor.AmplitudeMonitorTask {
	type Config struct {
		Interval    string        `mapstructure:"interval"`
		Threshold   string        `mapstructure:"threshold"`
		Concurrency int           `mapstructure:"concurrency"`
		Timeout     time.Duration `mapstructure:"timeout"`
	}

	cfg := Config{
		Interval:    string(exchange.Interval5m),
		Concurrency: 16,
		Timeout:     2 * time.Minute,
	}
	if err := viper.UnmarshalKey("scan", &cfg); err != nil {
		panic(err)
	}

	interval, err := exchange.ParseInterval(cfg.Interval)
	if err != nil {
		panic(err)
	}
	threshold := monitor.DefaultThreshold
	if cfg.Threshold != "" {
		threshold, err = decimal.NewFromString(cfg.Threshold)
		if err != nil {
			panic(err)
		}
	}

	scanner := monitor.NewAmplitudeScanner(marketSvc, interval,
		monitor.WithConcurrency(cfg.Concurrency),
		monitor.WithMetrics(m),
	)
	return monitor.NewAmplitudeMonitorTask(scanner, symbolSvc,
		monitor.NewAlertDispatcher(notifier, m),
		monitor.WithThreshold(threshold),
		monitor.WithScanTimeout(cfg.Timeout),
		monitor.WithIgnoreRepo(symbolRepo),
		monitor.WithTaskMetrics(m, pusher),
	)
}

// InitRunner once 为 true 时忽略 schedule.every, 只跑一个周期
func InitRunner(task schedule.Task, once bool) *schedule.Runner {
	type Config struct {
		Backoff    time.Duration `mapstructure:"backoff"`
		MaxRetries int           `mapstructure:"max_retries"`
		Every      time.Duration `mapstructure:"every"`
	}

	cfg := Config{
		Backoff:    time.Minute,
		MaxRetries: 3,
	}
	if err := viper.UnmarshalKey("schedule", &cfg); err != nil {
		panic(err)
	}
	if once {
		cfg.Every = 0
	}
	return schedule.NewRunner(task,
		schedule.WithBackoff(cfg.Backoff),
		schedule.WithMaxRetries(cfg.MaxRetries),
		schedule.WithEvery(cfg.Every),
	)
}
