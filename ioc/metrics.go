package ioc

import (
	"github.com/KNICEX/amplitude-scanner/internal/metrics"
	"github.com/spf13/viper"
)

// InitMetrics 未配置 pushgateway 时 pusher 为 nil, 指标只在进程内累计
func InitMetrics() (*metrics.ScanMetrics, *metrics.Pusher) {
	type Config struct {
		Pushgateway string `mapstructure:"pushgateway"`
		Job         string `mapstructure:"job"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("metrics", &cfg); err != nil {
		panic(err)
	}
	m := metrics.NewScanMetrics()
	return m, metrics.NewPusher(cfg.Pushgateway, cfg.Job, m)
}
