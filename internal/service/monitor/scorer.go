package monitor

import (
	"fmt"

	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/KNICEX/amplitude-scanner/pkg/decimalx"
	"github.com/shopspring/decimal"
)

// Amplitude (high - low) / open * 100
func Amplitude(k exchange.Kline) (decimal.Decimal, error) {
	if k.High.LessThan(k.Low) {
		return decimal.Zero, fmt.Errorf("high %s low %s: %w", k.High, k.Low, ErrInvertedRange)
	}
	amp, err := decimalx.PercentOf(k.High.Sub(k.Low), k.Open)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrNonPositiveOpen, err)
	}
	return amp, nil
}
