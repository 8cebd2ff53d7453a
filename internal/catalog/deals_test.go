package catalog

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func newSynthesiser() *DealSynthesiser {
	return NewDealSynthesiser(DefaultSaleKeywords, DefaultSaleEndings)
}

func TestSynthesiseDeterministic(t *testing.T) {
	d := newSynthesiser()
	items := sampleItems()

	first := d.Synthesise(items)
	second := d.Synthesise(items)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same input list must yield the same sale set and prices")
	}
}

func TestSynthesiseSalePricesAreValid(t *testing.T) {
	d := newSynthesiser()
	result := d.Synthesise(sampleItems())

	if result.DealsCount != len(result.Deals) {
		t.Errorf("DealsCount %d != len(Deals) %d", result.DealsCount, len(result.Deals))
	}

	for _, deal := range result.Deals {
		if !strings.HasPrefix(deal.SalePrice, CurrencyPrefix) {
			t.Errorf("%s: sale price %q lost the currency prefix of %q", deal.Name, deal.SalePrice, deal.Price)
		}
		orig, ok := ParsePrice(deal.Price)
		if !ok {
			t.Fatalf("%s: original price %q unparseable", deal.Name, deal.Price)
		}
		sale, ok := ParsePrice(deal.SalePrice)
		if !ok {
			t.Fatalf("%s: sale price %q unparseable", deal.Name, deal.SalePrice)
		}
		if !sale.LessThan(orig) {
			t.Errorf("%s: sale %s not strictly below original %s", deal.Name, sale, orig)
		}
	}
}

func TestSynthesisePennyPrices(t *testing.T) {
	d := newSynthesiser()

	// "Sale Crimp Set" hashes to the minimum 10% discount, the worst
	// case for keeping a rounded penny price strictly below the original.
	for _, price := range []string{"£0.05", "£0.09", "£0.01"} {
		result := d.Synthesise([]DisplayItem{
			{Name: "Sale Crimp Set", Price: price, Supplier: "CEF"},
		})
		if result.DealsCount != 1 {
			t.Fatalf("%s: keyword item not marked on sale", price)
		}
		orig, _ := ParsePrice(result.Deals[0].Price)
		sale, _ := ParsePrice(result.Deals[0].SalePrice)
		if !sale.LessThan(orig) {
			t.Errorf("%s: sale %s not strictly below original %s", price, sale, orig)
		}
	}
}

func TestSynthesiseKeywordDetection(t *testing.T) {
	d := newSynthesiser()
	items := []DisplayItem{
		{Name: "Clearance Combi Drill", Price: "£80.00", Supplier: "Toolstation"},
	}
	result := d.Synthesise(items)
	if result.DealsCount != 1 {
		t.Fatalf("keyword item not marked on sale")
	}
	deal := result.Deals[0]

	// Generated discount must sit in [10, 30] percent of the original.
	orig, _ := ParsePrice(deal.Price)
	sale, _ := ParsePrice(deal.SalePrice)
	pct := orig.Sub(sale).Div(orig).Mul(decimal.NewFromInt(100)).InexactFloat64()
	if pct < 9 || pct > 31 {
		t.Errorf("discount %.1f%% outside the 10–30%% band (with rounding slack)", pct)
	}
}

func TestSynthesiseEndingDetection(t *testing.T) {
	d := newSynthesiser()
	result := d.Synthesise([]DisplayItem{
		{Name: "Plain Spanner", Price: "£24.99", Supplier: "Toolstation"},
	})
	if result.DealsCount != 1 {
		t.Error(".99 ending should mark the item on sale")
	}
}

func TestSynthesiseSupplierHeuristic(t *testing.T) {
	d := newSynthesiser()
	result := d.Synthesise([]DisplayItem{
		{Name: "Value Pack Cable Clips", Price: "£4.10", Supplier: "Screwfix"},
	})
	if result.DealsCount != 1 {
		t.Error("screwfix value-pack heuristic should fire")
	}
}

func TestSynthesiseRealSaleDataPassesThrough(t *testing.T) {
	d := newSynthesiser()
	items := []DisplayItem{
		{Name: "Combi Drill", Price: "£119.99", SalePrice: "£89.99", IsOnSale: true, Supplier: "Screwfix"},
	}
	result := d.Synthesise(items)
	if result.Deals[0].SalePrice != "£89.99" {
		t.Errorf("real sale price rewritten to %q", result.Deals[0].SalePrice)
	}
}

func TestSynthesiseRanking(t *testing.T) {
	d := newSynthesiser()
	result := d.Synthesise(sampleItems())

	for i := 1; i < len(result.TopDiscounts); i++ {
		if savingsPercent(result.TopDiscounts[i-1]) < savingsPercent(result.TopDiscounts[i]) {
			t.Fatal("TopDiscounts not sorted by descending discount")
		}
	}
	if len(result.TopDiscounts) > 5 {
		t.Errorf("TopDiscounts holds %d items, cap is 5", len(result.TopDiscounts))
	}
	if result.DealsCount > 0 {
		if result.DealOfTheDay == nil {
			t.Fatal("deals exist but DealOfTheDay is nil")
		}
		best := savingsPercent(*result.DealOfTheDay)
		for _, deal := range result.Deals {
			if savingsPercent(deal) > best {
				t.Errorf("%s beats the deal of the day", deal.Name)
			}
		}
	}
}

func TestSynthesiseUnparseablePrices(t *testing.T) {
	d := newSynthesiser()
	items := []DisplayItem{
		{Name: "Sale Mystery Item", Price: "Price on request", Supplier: "Toolstation"},
		{Name: "Clearance Knife", Price: "£12.00", Supplier: "Toolstation"},
	}
	result := d.Synthesise(items)

	// The unparseable item is detected but cannot be priced, so it never
	// becomes a deal; nothing panics and no NaN enters the ranking.
	if result.DealsCount != 1 {
		t.Fatalf("got %d deals, want 1", result.DealsCount)
	}
	if result.Deals[0].Name != "Clearance Knife" {
		t.Errorf("wrong deal: %q", result.Deals[0].Name)
	}
}

func TestSynthesiseEmptyInput(t *testing.T) {
	d := newSynthesiser()
	result := d.Synthesise(nil)

	if result.DealsCount != 0 || len(result.Deals) != 0 || result.DealOfTheDay != nil {
		t.Errorf("empty input should yield an empty result: %#v", result)
	}
}

func TestSpecimenDrillScenario(t *testing.T) {
	d := newSynthesiser()
	items := []DisplayItem{
		{Name: "Drill Driver 18V", Price: "£120.00", Category: CategoryPowerTools, Supplier: "Screwfix"},
		{Name: "Multimeter Pro", Price: "£45.99", Category: CategoryTestEquipment, Supplier: "CEF"},
	}
	result := d.Synthesise(items)

	for _, deal := range result.Deals {
		if deal.Name != "Drill Driver 18V" {
			continue
		}
		sale, ok := ParsePrice(deal.SalePrice)
		if !ok {
			t.Fatalf("sale price %q unparseable", deal.SalePrice)
		}
		if !sale.LessThan(decimal.NewFromInt(120)) {
			t.Errorf("sale price %s not below £120", sale)
		}
		ending := priceEnding(sale)
		if ending != "99" && ending != "95" {
			t.Errorf("sale price %q lacks a retail ending for its bracket", deal.SalePrice)
		}
	}
}
