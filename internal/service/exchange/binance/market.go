package binance

import (
	"context"
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var _ exchange.MarketService = (*MarketService)(nil)

type MarketService struct {
	cli     *futures.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

type MarketOption func(m *MarketService)

// WithRateLimit 限制请求速率, rps <= 0 表示不限制
func WithRateLimit(rps float64, burst int) MarketOption {
	return func(m *MarketService) {
		if rps <= 0 {
			m.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst <= 0 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithBreaker 连续失败 maxFailures 次后熔断 openTimeout 时长
func WithBreaker(maxFailures uint32, openTimeout time.Duration) MarketOption {
	return func(m *MarketService) {
		m.breaker = newBreaker(maxFailures, openTimeout)
	}
}

func newBreaker(maxFailures uint32, openTimeout time.Duration) *gobreaker.CircuitBreaker {
	if maxFailures == 0 {
		maxFailures = 5
	}
	st := gobreaker.Settings{
		Name:    "binance-klines",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isBreakerSuccess,
	}
	return gobreaker.NewCircuitBreaker(st)
}

// NewMarketService 创建市场数据服务
func NewMarketService(cli *futures.Client, opts ...MarketOption) *MarketService {
	m := &MarketService{
		cli:     cli,
		limiter: rate.NewLimiter(rate.Inf, 0),
		breaker: newBreaker(5, time.Minute),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MarketService) GetKlines(ctx context.Context, req exchange.GetKlinesReq) ([]exchange.Kline, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, handleError(err, "GetKlines")
	}

	res, err := m.breaker.Execute(func() (interface{}, error) {
		svc := m.cli.NewKlinesService().Symbol(req.Symbol.ToString()) // 币安合约API使用 BTCUSDT 格式，不是 BTC/USDT
		if req.Interval.ToString() != "" {
			svc.Interval(req.Interval.ToString())
		}
		if req.Limit > 0 {
			svc.Limit(req.Limit)
		}
		return svc.Do(ctx)
	})
	if err != nil {
		return nil, handleError(err, "GetKlines")
	}

	kls, err := convertKlines(res.([]*futures.Kline))
	if err != nil {
		return nil, handleError(err, "GetKlines")
	}
	return kls, nil
}
