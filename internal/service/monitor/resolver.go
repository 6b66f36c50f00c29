package monitor

import (
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
)

// ResolveClosed 选出 now 时刻最近一根已收盘的k线.
// 交易所可能返回收盘时间还在本地时钟之后的k线(仍在形成中), 这时退回到上一根;
// 两根都没收盘时返回 false, 本轮跳过该交易对.
func ResolveClosed(older, newer exchange.Kline, now time.Time) (exchange.Kline, bool) {
	if now.Before(newer.CloseTime) {
		if now.Before(older.CloseTime) {
			return exchange.Kline{}, false
		}
		return older, true
	}
	return newer, true
}
