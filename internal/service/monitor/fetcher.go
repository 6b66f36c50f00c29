package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
)

// KlineFetcher 拉取最近两根k线
type KlineFetcher struct {
	marketSvc exchange.MarketService
	interval  exchange.Interval
}

func NewKlineFetcher(marketSvc exchange.MarketService, interval exchange.Interval) *KlineFetcher {
	return &KlineFetcher{
		marketSvc: marketSvc,
		interval:  interval,
	}
}

// FetchLastTwo 返回 (older, newer), 不做重试
func (f *KlineFetcher) FetchLastTwo(ctx context.Context, symbol exchange.Symbol) (older, newer exchange.Kline, err error) {
	kLines, err := f.marketSvc.GetKlines(ctx, exchange.GetKlinesReq{
		Symbol:   symbol,
		Interval: f.interval,
		Limit:    2,
	})
	if err != nil {
		if !errors.Is(err, exchange.ErrTransport) {
			err = fmt.Errorf("%w: %w", exchange.ErrTransport, err)
		}
		return older, newer, fmt.Errorf("get %s klines of %s: %w", f.interval, symbol.ToString(), err)
	}
	if len(kLines) < 2 {
		return older, newer, fmt.Errorf("%s returned %d klines: %w", symbol.ToString(), len(kLines), exchange.ErrInsufficientData)
	}
	return kLines[len(kLines)-2], kLines[len(kLines)-1], nil
}
