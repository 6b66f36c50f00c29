package binance

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/samber/lo"
)

const symbolStatusTrading = "TRADING"

type SymbolService struct {
	cli    *futures.Client
	quotes map[string]struct{}
}

// NewSymbolService 只返回 quotes 计价的永续合约, 默认 USDT
func NewSymbolService(cli *futures.Client, quotes ...string) exchange.SymbolService {
	if len(quotes) == 0 {
		quotes = []string{"USDT"}
	}
	return &SymbolService{
		cli: cli,
		quotes: lo.SliceToMap(quotes, func(item string) (string, struct{}) {
			return strings.ToUpper(item), struct{}{}
		}),
	}
}

func (svc *SymbolService) GetAllSymbols(ctx context.Context) ([]exchange.Symbol, error) {
	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, handleError(err, "GetAllSymbols")
	}

	symbols := lo.FilterMap(info.Symbols, func(item futures.Symbol, index int) (exchange.Symbol, bool) {
		if item.Status != symbolStatusTrading || item.ContractType != futures.ContractTypePerpetual {
			return exchange.Symbol{}, false
		}
		if _, ok := svc.quotes[item.QuoteAsset]; !ok {
			return exchange.Symbol{}, false
		}
		return exchange.Symbol{
			Base:  item.BaseAsset,
			Quote: item.QuoteAsset,
		}, true
	})
	slog.Debug("loaded futures symbols", "total", len(info.Symbols), "tradable", len(symbols))
	return symbols, nil
}
