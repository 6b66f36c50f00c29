package monitor

import (
	"math/rand"
	"testing"

	"github.com/KNICEX/amplitude-scanner/pkg/decimalx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmplitude(t *testing.T) {
	testCases := []struct {
		name    string
		open    string
		high    string
		low     string
		want    string
		wantErr error
	}{
		{name: "4%", open: "100", high: "103", low: "99", want: "4"},
		{name: "0.7%", open: "100", high: "100.5", low: "99.8", want: "0.7"},
		{name: "flat", open: "5", high: "5", low: "5", want: "0"},
		{name: "small price", open: "0.0002", high: "0.00021", low: "0.00019", want: "10"},
		{name: "zero open", open: "0", high: "1", low: "0.5", wantErr: ErrNonPositiveOpen},
		{name: "negative open", open: "-1", high: "1", low: "0.5", wantErr: ErrNonPositiveOpen},
		{name: "inverted", open: "100", high: "99", low: "101", wantErr: ErrInvertedRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amp, err := Amplitude(newKline(baseOpen, tc.open, tc.high, tc.low))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, amp.Equal(decimalx.MustFromString(tc.want)), "got %s", amp)
		})
	}
}

func TestAmplitude_NonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	hundred := decimal.NewFromInt(100)
	for i := 0; i < 500; i++ {
		open := decimal.NewFromFloat(r.Float64()*1000 + 0.0001)
		low := decimal.NewFromFloat(r.Float64() * 1000)
		high := low.Add(decimal.NewFromFloat(r.Float64() * 50))

		k := newKline(baseOpen, "1", "1", "1")
		k.Open, k.High, k.Low = open, high, low

		amp, err := Amplitude(k)
		require.NoError(t, err)
		assert.False(t, amp.IsNegative())
		assert.True(t, amp.Equal(high.Sub(low).Div(open).Mul(hundred)))
	}
}
