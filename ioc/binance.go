package ioc

import (
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/KNICEX/amplitude-scanner/internal/service/exchange/binance"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/spf13/viper"
)

// InitBinanceFuturesCli 行情接口不需要签名, api key 可以为空
func InitBinanceFuturesCli() *futures.Client {
	type Config struct {
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		BaseURL   string `mapstructure:"base_url"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("cex.binance", &cfg); err != nil {
		panic(err)
	}

	cli := futures.NewClient(cfg.ApiKey, cfg.ApiSecret)
	if cfg.BaseURL != "" {
		cli.BaseURL = cfg.BaseURL
	}
	return cli
}

// InitBinanceService 行情请求经过限流和熔断
func InitBinanceService(cli *futures.Client) exchange.Service {
	type Config struct {
		RateLimit      float64       `mapstructure:"rate_limit"`
		Burst          int           `mapstructure:"burst"`
		BreakerFailure uint32        `mapstructure:"breaker_failures"`
		BreakerOpen    time.Duration `mapstructure:"breaker_open"`
	}

	cfg := Config{
		RateLimit:      20,
		Burst:          10,
		BreakerFailure: 5,
		BreakerOpen:    time.Minute,
	}
	if err := viper.UnmarshalKey("cex.binance", &cfg); err != nil {
		panic(err)
	}
	return binance.NewService(cli, viper.GetStringSlice("scan.quotes"),
		binance.WithRateLimit(cfg.RateLimit, cfg.Burst),
		binance.WithBreaker(cfg.BreakerFailure, cfg.BreakerOpen),
	)
}
