package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DealSynthesiser fabricates plausible "on sale" flags and sale prices
// for items that carry no real promotional data. It is cosmetic by
// intent: the output exists to give the deals view content, and is not
// a source of truth about pricing. Everything it does is a stable
// function of the input list, so re-running it over the same items
// reproduces the same sale set and prices.
type DealSynthesiser struct {
	keywords []string
	endings  []string
}

func NewDealSynthesiser(keywords, endings []string) *DealSynthesiser {
	return &DealSynthesiser{keywords: keywords, endings: endings}
}

const (
	// Items whose structural seed falls below this are marked on sale;
	// roughly a quarter of any list.
	seedSaleThreshold = 25

	topDiscountCount = 5
)

// Synthesise applies sale detection and price generation across the
// list, then ranks the resulting deals. Items already carrying real
// sale data from the source pass through untouched.
func (d *DealSynthesiser) Synthesise(items []DisplayItem) DealsResult {
	tools := make([]DisplayItem, len(items))
	copy(tools, items)

	for i := range tools {
		if tools[i].IsOnSale && tools[i].SalePrice != "" {
			continue
		}
		if !d.onSale(tools[i], i) {
			continue
		}
		orig, ok := ParsePrice(tools[i].Price)
		if !ok || !orig.IsPositive() {
			continue
		}
		tools[i].IsOnSale = true
		tools[i].SalePrice = salePrice(tools[i].Name, tools[i].Price, orig)
	}

	deals := make([]DisplayItem, 0, len(tools))
	for _, t := range tools {
		if t.IsOnSale && t.SalePrice != "" {
			deals = append(deals, t)
		}
	}

	// Rank by the discount implied by the displayed prices, not by the
	// hash that generated them, so the ordering always agrees with what
	// the user sees. Stable sort keeps first-encountered order on ties.
	ranked := make([]DisplayItem, len(deals))
	copy(ranked, deals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return savingsPercent(ranked[i]) > savingsPercent(ranked[j])
	})

	top := ranked
	if len(top) > topDiscountCount {
		top = top[:topDiscountCount]
	}

	result := DealsResult{
		Tools:        tools,
		Deals:        deals,
		TopDiscounts: top,
		DealsCount:   len(deals),
	}
	if len(ranked) > 0 {
		best := ranked[0]
		result.DealOfTheDay = &best
	}
	return result
}

// onSale is the detection OR: a sale word in the name, a psychological
// price ending, the per-supplier heuristic, or the structural seed.
func (d *DealSynthesiser) onSale(item DisplayItem, index int) bool {
	name := strings.ToLower(item.Name)
	for _, kw := range d.keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}

	ending := ""
	if p, ok := ParsePrice(item.Price); ok {
		ending = priceEnding(p)
	}
	for _, e := range d.endings {
		if ending == e {
			return true
		}
	}

	if strings.EqualFold(item.Supplier, "Screwfix") &&
		(strings.Contains(name, "value") || ending == "99" || ending == "95") {
		return true
	}

	return StructuralSeed(item.Name, item.Price, index) < seedSaleThreshold
}

var oneHundred = decimal.NewFromInt(100)

// salePrice derives a deterministic discounted price: a percentage in
// [10, 30] from the name hash, applied to the parsed price, snapped to
// a retail ending, prefixed with the original currency symbol.
func salePrice(name, formatted string, orig decimal.Decimal) string {
	pct := int64(NameHash(name)%21 + 10)
	discounted := orig.Mul(oneHundred.Sub(decimal.NewFromInt(pct))).Div(oneHundred)
	return currencySymbol(formatted) + retailRound(discounted).StringFixed(2)
}

// currencySymbol is the first character of a formatted price string.
func currencySymbol(formatted string) string {
	for _, r := range formatted {
		return string(r)
	}
	return CurrencyPrefix
}

// savingsPercent recomputes the discount from the two displayed prices.
// Anything unparseable contributes zero savings and sinks in the
// ranking instead of producing NaN comparisons.
func savingsPercent(item DisplayItem) float64 {
	orig, ok := ParsePrice(item.Price)
	if !ok || !orig.IsPositive() {
		return 0
	}
	sale, ok := ParsePrice(item.SalePrice)
	if !ok {
		return 0
	}
	return orig.Sub(sale).Div(orig).Mul(oneHundred).InexactFloat64()
}
