package decimalx

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func MustFromString(s string) decimal.Decimal {
	res, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// ParseAll 按顺序解析, 任何一个失败都返回错误
func ParseAll(ss ...string) ([]decimal.Decimal, error) {
	res := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("parse decimal %q: %w", s, err)
		}
		res[i] = d
	}
	return res, nil
}

// PercentOf 返回 part / whole * 100, whole 必须为正数
func PercentOf(part, whole decimal.Decimal) (decimal.Decimal, error) {
	if !whole.IsPositive() {
		return decimal.Zero, fmt.Errorf("percent of non-positive base %s", whole)
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)), nil
}
