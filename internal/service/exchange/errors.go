package exchange

import "errors"

// 行情源错误, 适配层需要用 %w 包装这些错误
var (
	// ErrTransport 网络、非2xx响应、超时或无法解析的返回
	ErrTransport = errors.New("market data transport failure")
	// ErrRateLimited 被交易所限频, 总是与 ErrTransport 一起包装
	ErrRateLimited = errors.New("market data rate limited")
	// ErrInsufficientData k线数量不足
	ErrInsufficientData = errors.New("insufficient kline data")
)
