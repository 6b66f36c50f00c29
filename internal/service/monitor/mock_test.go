package monitor

import (
	"context"
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/entity"
	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/KNICEX/amplitude-scanner/pkg/decimalx"
	"github.com/stretchr/testify/mock"
)

// ============ Mock 定义 ============

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetKlines(ctx context.Context, req exchange.GetKlinesReq) ([]exchange.Kline, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]exchange.Kline), args.Error(1)
}

type MockSymbolService struct {
	mock.Mock
}

func (m *MockSymbolService) GetAllSymbols(ctx context.Context) ([]exchange.Symbol, error) {
	args := m.Called(ctx)
	return args.Get(0).([]exchange.Symbol), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockSymbolRepo struct {
	mock.Mock
}

func (m *MockSymbolRepo) FindByMark(ctx context.Context, mark string) ([]entity.Symbol, error) {
	args := m.Called(ctx, mark)
	return args.Get(0).([]entity.Symbol), args.Error(1)
}

func (m *MockSymbolRepo) FindByBaseAndQuote(ctx context.Context, base, quote string) (entity.Symbol, error) {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(entity.Symbol), args.Error(1)
}

func (m *MockSymbolRepo) SetMark(ctx context.Context, base, quote, mark string) error {
	args := m.Called(ctx, base, quote, mark)
	return args.Error(0)
}

// ============ 测试数据 ============

var (
	// 较早一根5m k线的开盘时间
	baseOpen = time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)
	// 两根k线都已收盘
	afterBothClosed = baseOpen.Add(10*time.Minute + time.Second)
)

func usdt(base string) exchange.Symbol {
	return exchange.Symbol{Base: base, Quote: "USDT"}
}

func newKline(openTime time.Time, open, high, low string) exchange.Kline {
	return exchange.Kline{
		OpenTime:  openTime,
		CloseTime: openTime.Add(exchange.Interval5m.Duration() - time.Millisecond),
		Open:      decimalx.MustFromString(open),
		Close:     decimalx.MustFromString(open),
		High:      decimalx.MustFromString(high),
		Low:       decimalx.MustFromString(low),
		Volume:    decimalx.MustFromString("1000"),
	}
}

// twoKlines 较早一根振幅很小, 较新一根使用给定价格
func twoKlines(open, high, low string) []exchange.Kline {
	return []exchange.Kline{
		newKline(baseOpen, "100", "100.1", "99.9"),
		newKline(baseOpen.Add(5*time.Minute), open, high, low),
	}
}

func symbolIs(base string) any {
	return mock.MatchedBy(func(req exchange.GetKlinesReq) bool {
		return req.Symbol.Base == base
	})
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
