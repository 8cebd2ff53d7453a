package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"£120.00", "120", true},
		{"£1,299.50", "1299.5", true},
		{"45.99", "45.99", true},
		{"from £9.95 per unit", "9.95", true},
		{"", "", false},
		{"price on request", "", false},
		{"£", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		if ok != tt.ok {
			t.Errorf("ParsePrice(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("ParsePrice(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, raw := range []string{"0.01", "9.99", "10.00", "45.90", "120.00", "1299.95"} {
		d, _ := decimal.NewFromString(raw)
		back, ok := ParsePrice(FormatPrice(d))
		if !ok {
			t.Fatalf("round trip of %s failed to parse", raw)
		}
		if !back.Equal(d) {
			t.Errorf("round trip of %s: got %s", raw, back)
		}
	}
}

func TestRetailRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"7.231", "7.23"},    // under 10: truncated to two decimals
		{"9.999", "9.99"},    // never rounded up out of the bracket
		{"0.045", "0.04"},    // penny prices truncate too
		{"10.00", "10.99"},   // 10–50: floor + .99
		{"43.20", "43.99"},
		{"49.99", "49.99"},
		{"50.00", "50.95"},   // 50–100: floor + .95
		{"87.64", "87.95"},
		{"100.00", "100.99"}, // 100+: nearest 5 below + .99
		{"112.80", "110.99"},
		{"254.00", "250.99"},
	}
	for _, tt := range tests {
		in, _ := decimal.NewFromString(tt.in)
		if got := retailRound(in).StringFixed(2); got != tt.want {
			t.Errorf("retailRound(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPriceEnding(t *testing.T) {
	d, _ := decimal.NewFromString("24.99")
	if got := priceEnding(d); got != "99" {
		t.Errorf("got %q, want 99", got)
	}
	d, _ = decimal.NewFromString("45.9")
	if got := priceEnding(d); got != "90" {
		t.Errorf("got %q, want 90", got)
	}
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0.01", 0},
		{"24.99", 0},
		{"25.00", 1}, // boundary belongs to the upper bucket
		{"49.99", 1},
		{"50.00", 2},
		{"99.99", 2},
		{"100.00", 3},
		{"249.99", 3},
		{"250.00", 4},
		{"5000", 4},
	}
	for _, tt := range tests {
		in, _ := decimal.NewFromString(tt.in)
		if got := bucketIndex(in); got != tt.want {
			t.Errorf("bucketIndex(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
