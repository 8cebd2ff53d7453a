package catalog

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is the fixed currency symbol for every formatted price.
// The source table carries UK trade prices only.
const CurrencyPrefix = "£"

// leadingNumberRe extracts the first numeric run from a formatted price,
// tolerating thousands separators ("£1,299.00").
var leadingNumberRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParsePrice pulls the numeric value out of a raw or formatted price
// string. ok is false when nothing numeric can be found.
func ParsePrice(s string) (decimal.Decimal, bool) {
	m := leadingNumberRe.FindString(s)
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatPrice renders d with the currency prefix and exactly two decimals.
func FormatPrice(d decimal.Decimal) string {
	return CurrencyPrefix + d.StringFixed(2)
}

// priceEnding returns the two fractional digits of d ("99" for £24.99).
func priceEnding(d decimal.Decimal) string {
	s := d.StringFixed(2)
	return s[len(s)-2:]
}

var (
	zeroPrice = decimal.Zero
	five      = decimal.NewFromInt(5)
)

// retailRound snaps a discounted price onto a plausible shelf ending.
// Below £10 the value is truncated to two decimals (never rounded up,
// so a discounted penny price stays below the original); £10–£50 rounds
// down to a whole-pound .99; £50–£100 to a whole-pound .95; £100 and up
// to the nearest £5 below, plus .99.
func retailRound(v decimal.Decimal) decimal.Decimal {
	switch {
	case v.LessThan(decimal.NewFromInt(10)):
		return v.RoundDown(2)
	case v.LessThan(decimal.NewFromInt(50)):
		return v.Floor().Add(decimal.NewFromFloat(0.99))
	case v.LessThan(decimal.NewFromInt(100)):
		return v.Floor().Add(decimal.NewFromFloat(0.95))
	default:
		return v.Div(five).Floor().Mul(five).Add(decimal.NewFromFloat(0.99))
	}
}

// priceBucketBounds are the fixed histogram boundaries in pounds. Each
// parseable price lands in exactly one bucket by min <= p < max; the
// last bucket is unbounded above.
var priceBucketBounds = []struct {
	label string
	min   int64
	max   int64 // 0 means unbounded
}{
	{"Under £25", 0, 25},
	{"£25 – £50", 25, 50},
	{"£50 – £100", 50, 100},
	{"£100 – £250", 100, 250},
	{"£250+", 250, 0},
}

func bucketIndex(p decimal.Decimal) int {
	for i, b := range priceBucketBounds {
		if b.max == 0 {
			return i
		}
		if p.LessThan(decimal.NewFromInt(b.max)) {
			return i
		}
	}
	return len(priceBucketBounds) - 1
}
