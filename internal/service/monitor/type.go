package monitor

import (
	"context"
	"errors"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/shopspring/decimal"
)

var (
	// ErrNonPositiveOpen 开盘价 <= 0, 振幅无意义
	ErrNonPositiveOpen = errors.New("kline open price is not positive")
	// ErrInvertedRange 最高价低于最低价
	ErrInvertedRange = errors.New("kline high is below low")

	// errPending k线还没收盘, 本轮跳过
	errPending = errors.New("kline not closed yet")
)

// Result 一个交易对最近一根已收盘k线及其振幅(百分比)
type Result struct {
	Symbol    exchange.Symbol
	Kline     exchange.Kline
	Amplitude decimal.Decimal
}

// AmplitudeService 扫描服务接口
type AmplitudeService interface {
	Scan(ctx context.Context, symbols []exchange.Symbol) []Result
}
