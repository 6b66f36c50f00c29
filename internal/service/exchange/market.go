package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Kline struct {
	OpenTime         time.Time
	CloseTime        time.Time
	Open             decimal.Decimal
	Close            decimal.Decimal
	High             decimal.Decimal
	Low              decimal.Decimal
	Volume           decimal.Decimal // 成交量
	QuoteAssetVolume decimal.Decimal // 成交额
	TradeNum         int64           // 成交笔数
}

type MarketService interface {
	// GetKlines 返回按开盘时间升序排列的k线
	GetKlines(ctx context.Context, req GetKlinesReq) ([]Kline, error)
}

// GetKlinesReq Limit > 0 时只取最近 Limit 根
type GetKlinesReq struct {
	Symbol   Symbol
	Interval Interval
	Limit    int
}
