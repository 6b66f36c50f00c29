package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/entity"
	"github.com/KNICEX/amplitude-scanner/internal/metrics"
	"github.com/KNICEX/amplitude-scanner/internal/repo"
	"github.com/KNICEX/amplitude-scanner/internal/schedule"
	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var _ schedule.Task = (*AmplitudeMonitorTask)(nil)

// AmplitudeMonitorTask 一个完整的扫描周期: 拉取交易对 -> 扫描 -> 聚合 -> 推送
type AmplitudeMonitorTask struct {
	symbolSvc  exchange.SymbolService
	scanner    AmplitudeService
	dispatcher *AlertDispatcher

	threshold   decimal.Decimal
	scanTimeout time.Duration
	symbolRepo  repo.SymbolRepo

	metrics *metrics.ScanMetrics
	pusher  *metrics.Pusher
}

type TaskOption func(t *AmplitudeMonitorTask)

func WithThreshold(threshold decimal.Decimal) TaskOption {
	return func(t *AmplitudeMonitorTask) {
		t.threshold = threshold
	}
}

// WithScanTimeout 超时后未完成的交易对被丢弃, 已完成的照常聚合
func WithScanTimeout(d time.Duration) TaskOption {
	return func(t *AmplitudeMonitorTask) {
		t.scanTimeout = d
	}
}

// WithIgnoreRepo 跳过本地标记为 ignore 的交易对
func WithIgnoreRepo(symbolRepo repo.SymbolRepo) TaskOption {
	return func(t *AmplitudeMonitorTask) {
		t.symbolRepo = symbolRepo
	}
}

func WithTaskMetrics(m *metrics.ScanMetrics, pusher *metrics.Pusher) TaskOption {
	return func(t *AmplitudeMonitorTask) {
		t.metrics = m
		t.pusher = pusher
	}
}

func NewAmplitudeMonitorTask(scanner AmplitudeService, symbolSvc exchange.SymbolService,
	dispatcher *AlertDispatcher, opts ...TaskOption) *AmplitudeMonitorTask {
	task := &AmplitudeMonitorTask{
		symbolSvc:  symbolSvc,
		scanner:    scanner,
		dispatcher: dispatcher,
		threshold:  DefaultThreshold,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Run 只有拉取交易对列表失败时返回错误, 由外层退避重试整个周期
func (t *AmplitudeMonitorTask) Run(ctx context.Context) (err error) {
	start := time.Now()
	logger := slog.With("scan_id", uuid.NewString())
	matches := 0
	defer func() {
		t.metrics.ObserveCycle(err, matches, time.Since(start))
		if perr := t.pusher.Push(ctx); perr != nil {
			logger.Warn("failed to push scan metrics", "error", perr)
		}
	}()

	symbols, err := t.symbolSvc.GetAllSymbols(ctx)
	if err != nil {
		logger.Error("failed to list symbols", "error", err)
		return fmt.Errorf("list symbols: %w", err)
	}
	symbols = t.rejectIgnored(ctx, logger, symbols)
	logger.Info("start amplitude scan", "symbols", len(symbols), "threshold", t.threshold.String())

	scanCtx := ctx
	if t.scanTimeout > 0 {
		var cancel context.CancelFunc
		scanCtx, cancel = context.WithTimeout(ctx, t.scanTimeout)
		defer cancel()
	}
	results := t.scanner.Scan(scanCtx, symbols)
	matched := Aggregate(results, t.threshold)
	matches = len(matched)
	logger.Info("amplitude scan finished",
		"symbols", len(symbols), "resolved", len(results), "matched", len(matched), "elapsed", time.Since(start))

	if len(matched) == 0 {
		logger.Info("no qualifying instruments", "threshold", t.threshold.String())
		return nil
	}
	for _, r := range matched {
		logger.Info("high amplitude kline",
			"symbol", r.Symbol.ToString(),
			"open_time", r.Kline.OpenTime,
			"high", r.Kline.High.String(),
			"low", r.Kline.Low.String(),
			"amplitude", r.Amplitude.StringFixed(4),
		)
	}

	t.dispatcher.Dispatch(ctx, matched)
	return nil
}

func (t *AmplitudeMonitorTask) rejectIgnored(ctx context.Context, logger *slog.Logger, symbols []exchange.Symbol) []exchange.Symbol {
	if t.symbolRepo == nil {
		return symbols
	}
	ignored, err := t.symbolRepo.FindByMark(ctx, entity.MarkIgnore)
	if err != nil {
		logger.Warn("failed to load ignored symbols, scan all", "error", err)
		return symbols
	}
	if len(ignored) == 0 {
		return symbols
	}

	set := lo.SliceToMap(ignored, func(item entity.Symbol) (exchange.Symbol, struct{}) {
		return exchange.Symbol{Base: item.Base, Quote: item.Quote}, struct{}{}
	})
	res := lo.Reject(symbols, func(item exchange.Symbol, index int) bool {
		_, ok := set[item]
		return ok
	})
	logger.Info("ignored symbols rejected", "count", len(symbols)-len(res))
	return res
}

func (t *AmplitudeMonitorTask) Name() string {
	return "amplitude monitor task"
}
