package monitor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultThreshold 默认振幅阈值, 单位 %
var DefaultThreshold = decimal.NewFromInt(2)

// Aggregate 过滤出振幅 >= threshold 的结果, 按振幅降序;
// 振幅相同按交易对名称升序, 保证输出稳定. 没有命中时返回空切片.
func Aggregate(results []Result, threshold decimal.Decimal) []Result {
	matched := lo.Filter(results, func(item Result, index int) bool {
		return item.Amplitude.GreaterThanOrEqual(threshold)
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return resultLess(matched[i], matched[j])
	})
	return matched
}

func resultLess(a, b Result) bool {
	if c := a.Amplitude.Cmp(b.Amplitude); c != 0 {
		return c > 0
	}
	if as, bs := a.Symbol.ToString(), b.Symbol.ToString(); as != bs {
		return as < bs
	}
	return a.Kline.CloseTime.Before(b.Kline.CloseTime)
}

// FormatAlert 告警正文, 第一行列出所有交易对, 之后每行一个交易对的明细
func FormatAlert(results []Result) string {
	names := lo.Map(results, func(item Result, index int) string {
		return item.Symbol.ToString()
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("发现高振幅交易对:%s", strings.Join(names, ", ")))
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("\n%s 振幅 %s%% 开盘 %s 最高 %s 最低 %s (%s UTC)",
			r.Symbol.ToString(),
			r.Amplitude.StringFixed(2),
			r.Kline.Open.String(),
			r.Kline.High.String(),
			r.Kline.Low.String(),
			r.Kline.OpenTime.UTC().Format("2006-01-02 15:04"),
		))
	}
	return sb.String()
}
