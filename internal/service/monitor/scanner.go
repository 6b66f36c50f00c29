package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/metrics"
	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/sourcegraph/conc/pool"
)

const defaultConcurrency = 16

var _ AmplitudeService = (*AmplitudeScanner)(nil)

// AmplitudeScanner 并发扫描所有交易对, 并发数有上限
type AmplitudeScanner struct {
	fetcher     *KlineFetcher
	concurrency int
	now         func() time.Time
	metrics     *metrics.ScanMetrics
}

type Option func(s *AmplitudeScanner)

func WithConcurrency(n int) Option {
	return func(s *AmplitudeScanner) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *AmplitudeScanner) {
		s.now = now
	}
}

func WithMetrics(m *metrics.ScanMetrics) Option {
	return func(s *AmplitudeScanner) {
		s.metrics = m
	}
}

func NewAmplitudeScanner(marketSvc exchange.MarketService, interval exchange.Interval, opts ...Option) *AmplitudeScanner {
	s := &AmplitudeScanner{
		fetcher:     NewKlineFetcher(marketSvc, interval),
		concurrency: defaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan 等所有交易对都结束后才返回. 单个交易对的失败或未收盘只会让它被丢弃;
// ctx 取消后未完成的交易对同样被丢弃, 已完成的结果仍然有效. 返回顺序不确定.
func (s *AmplitudeScanner) Scan(ctx context.Context, symbols []exchange.Symbol) []Result {
	if len(symbols) == 0 {
		return nil
	}

	p := pool.NewWithResults[Result]().WithContext(ctx).WithMaxGoroutines(s.concurrency)
	for _, symbol := range symbols {
		p.Go(func(ctx context.Context) (Result, error) {
			res, err := s.scanSymbol(ctx, symbol)
			s.metrics.ObserveInstrument(outcomeOf(err))
			if err != nil {
				logSkip(symbol, err)
				return Result{}, err
			}
			return res, nil
		})
	}
	// 出错的任务不会进入结果, 错误已经逐个记录
	results, _ := p.Wait()
	return results
}

func (s *AmplitudeScanner) scanSymbol(ctx context.Context, symbol exchange.Symbol) (Result, error) {
	older, newer, err := s.fetcher.FetchLastTwo(ctx, symbol)
	if err != nil {
		return Result{}, err
	}

	kLine, ok := ResolveClosed(older, newer, s.now())
	if !ok {
		closesAt := older.OpenTime.Add(s.fetcher.interval.Duration()).UTC()
		return Result{}, fmt.Errorf("%w, %s closes at %s", errPending, symbol.ToString(), closesAt.Format(time.RFC3339))
	}

	amp, err := Amplitude(kLine)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Symbol:    symbol,
		Kline:     kLine,
		Amplitude: amp,
	}, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, errPending):
		return metrics.OutcomePending
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	case errors.Is(err, exchange.ErrInsufficientData):
		return metrics.OutcomeInsufficient
	case errors.Is(err, ErrNonPositiveOpen), errors.Is(err, ErrInvertedRange):
		return metrics.OutcomeAnomaly
	default:
		return metrics.OutcomeTransport
	}
}

func logSkip(symbol exchange.Symbol, err error) {
	switch outcomeOf(err) {
	case metrics.OutcomePending:
		slog.Debug("skip symbol, kline not closed", "symbol", symbol.ToString(), "reason", err)
	case metrics.OutcomeInsufficient:
		slog.Warn("skip symbol", "symbol", symbol.ToString(), "reason", "too little k lines", "error", err)
	case metrics.OutcomeAnomaly:
		slog.Warn("skip symbol, kline data anomaly", "symbol", symbol.ToString(), "error", err)
	case metrics.OutcomeCanceled:
		slog.Warn("symbol scan canceled", "symbol", symbol.ToString(), "error", err)
	default:
		slog.Error("failed to get k lines", "symbol", symbol.ToString(), "error", err)
	}
}
