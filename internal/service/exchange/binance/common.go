package binance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/KNICEX/amplitude-scanner/pkg/decimalx"
	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/sony/gobreaker"
)

// 币安限频相关错误码
// -1003 TOO_MANY_REQUESTS, -1015 TOO_MANY_ORDERS
var rateLimitCodes = map[int64]struct{}{
	-1003: {},
	-1015: {},
}

// handleError 把币安 SDK 的错误统一包装成 exchange.ErrTransport
func handleError(err error, op string) error {
	if err == nil {
		return nil
	}
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		if _, ok := rateLimitCodes[apiErr.Code]; ok {
			return fmt.Errorf("%s failed: %w: %w: %w", op, exchange.ErrTransport, exchange.ErrRateLimited, err)
		}
		return fmt.Errorf("%s failed: %w: %w", op, exchange.ErrTransport, err)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s failed: %w: circuit open: %w", op, exchange.ErrTransport, err)
	}
	return fmt.Errorf("%s failed: %w: %w", op, exchange.ErrTransport, err)
}

// 上游自身异常的错误码: 服务端错误、超时、限频和停服.
// 其余 APIError (如 -1121 Invalid symbol) 只和单个请求有关, 不计入熔断
var upstreamFailureCodes = map[int64]struct{}{
	-1000: {}, // UNKNOWN
	-1001: {}, // DISCONNECTED
	-1003: {}, // TOO_MANY_REQUESTS
	-1006: {}, // UNEXPECTED_RESP
	-1007: {}, // TIMEOUT
	-1008: {}, // SERVER_BUSY
	-1015: {},
	-1016: {}, // SERVICE_SHUTTING_DOWN
}

// isBreakerSuccess 只有上游不健康才算失败. 调用方取消或超时不算
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		// 无法解析的错误响应 (网关 5xx 页面, 418/429 空 body) 视为上游异常
		if !apiErr.IsValid() {
			return false
		}
		_, failure := upstreamFailureCodes[apiErr.Code]
		return !failure
	}
	// 网络错误, 响应解码失败
	return false
}

func convertKline(k *futures.Kline) (exchange.Kline, error) {
	if k == nil {
		return exchange.Kline{}, errors.New("nil kline")
	}
	ds, err := decimalx.ParseAll(k.Open, k.Close, k.High, k.Low, k.Volume, k.QuoteAssetVolume)
	if err != nil {
		return exchange.Kline{}, err
	}
	return exchange.Kline{
		OpenTime:         time.UnixMilli(k.OpenTime),
		CloseTime:        time.UnixMilli(k.CloseTime),
		Open:             ds[0],
		Close:            ds[1],
		High:             ds[2],
		Low:              ds[3],
		Volume:           ds[4],
		QuoteAssetVolume: ds[5],
		TradeNum:         k.TradeNum,
	}, nil
}

func convertKlines(klines []*futures.Kline) ([]exchange.Kline, error) {
	kls := make([]exchange.Kline, len(klines))
	for i, k := range klines {
		kl, err := convertKline(k)
		if err != nil {
			return nil, fmt.Errorf("convert kline %d: %w", i, err)
		}
		kls[i] = kl
	}
	return kls, nil
}
