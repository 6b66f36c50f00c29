package exchange

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Symbol 交易对
type Symbol struct {
	Base  string
	Quote string
}

func (s Symbol) ToString() string {
	return fmt.Sprintf("%s%s", s.Base, s.Quote)
}

func (s Symbol) IsZero() bool {
	return s.Base == "" || s.Quote == ""
}

// SplitSymbol 按常见计价币种拆分 BTCUSDT 形式的交易对
func SplitSymbol(s string) Symbol {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, q := range []string{"USDT", "USDC", "BUSD", "BTC", "ETH"} {
		if strings.HasSuffix(s, q) && len(s) > len(q) {
			return Symbol{Base: strings.TrimSuffix(s, q), Quote: q}
		}
	}
	return Symbol{Base: s}
}

type Interval string

func (i Interval) ToString() string {
	return string(i)
}

const (
	Interval1m  Interval = "1m"
	Interval3m  Interval = "3m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval2h  Interval = "2h"
	Interval4h  Interval = "4h"
	Interval6h  Interval = "6h"
	Interval8h  Interval = "8h"
	Interval12h Interval = "12h"
	Interval1d  Interval = "1d"
	Interval3d  Interval = "3d"
	Interval1w  Interval = "1w"
)

var intervalDurations = map[Interval]time.Duration{
	Interval1m:  time.Minute,
	Interval3m:  3 * time.Minute,
	Interval5m:  5 * time.Minute,
	Interval15m: 15 * time.Minute,
	Interval30m: 30 * time.Minute,
	Interval1h:  time.Hour,
	Interval2h:  2 * time.Hour,
	Interval4h:  4 * time.Hour,
	Interval6h:  6 * time.Hour,
	Interval8h:  8 * time.Hour,
	Interval12h: 12 * time.Hour,
	Interval1d:  24 * time.Hour,
	Interval3d:  72 * time.Hour,
	Interval1w:  7 * 24 * time.Hour,
}

// Duration k线周期时长, 未知周期返回 0
func (i Interval) Duration() time.Duration {
	return intervalDurations[i]
}

// ParseInterval 校验配置中的k线周期
func ParseInterval(s string) (Interval, error) {
	i := Interval(strings.TrimSpace(s))
	if i.Duration() == 0 {
		return "", fmt.Errorf("unsupported kline interval %q", s)
	}
	return i, nil
}

// SymbolService 交易对列表
type SymbolService interface {
	// GetAllSymbols 返回当前可交易的全部交易对
	GetAllSymbols(ctx context.Context) ([]Symbol, error)
}

// Service 某个交易所的行情入口
type Service interface {
	MarketService() MarketService
	SymbolService() SymbolService
}
