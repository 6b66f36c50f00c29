package binance

import (
	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/adshao/go-binance/v2/futures"
)

var _ exchange.Service = (*Service)(nil)

// Service 币安 U 本位合约的行情入口
type Service struct {
	marketSvc exchange.MarketService
	symbolSvc exchange.SymbolService
}

func NewService(cli *futures.Client, quotes []string, opts ...MarketOption) *Service {
	return &Service{
		marketSvc: NewMarketService(cli, opts...),
		symbolSvc: NewSymbolService(cli, quotes...),
	}
}

func (s *Service) MarketService() exchange.MarketService {
	return s.marketSvc
}

func (s *Service) SymbolService() exchange.SymbolService {
	return s.symbolSvc
}
