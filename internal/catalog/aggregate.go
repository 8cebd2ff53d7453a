package catalog

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Aggregator derives the category lines, summaries and statistics shown
// on the storefront. It is a pure function of its input: the same item
// list always produces byte-identical output. The synthetic
// rating/sales figures on category cards come from NameHash, not an RNG.
type Aggregator struct {
	categories []DisplayCategory
}

// NewAggregator fixes the set of display categories the category views
// report on. Every configured category appears in those views, zero
// counts included; the stats breakdown only reports categories that
// actually hold items.
func NewAggregator(categories []DisplayCategory) *Aggregator {
	return &Aggregator{categories: categories}
}

// ToolCategories builds the compact per-category lines for the tools view.
func (a *Aggregator) ToolCategories(items []DisplayItem) []ToolCategory {
	byCat := groupByCategory(items)
	trending := a.trendingSet(byCat)

	out := make([]ToolCategory, 0, len(a.categories))
	for _, cat := range a.categories {
		group := byCat[cat]
		out = append(out, ToolCategory{
			Name:       cat,
			Count:      len(group),
			PriceRange: priceRange(group),
			Trending:   trending[cat],
		})
	}
	return out
}

// Summaries builds the rich category cards for the materials view.
func (a *Aggregator) Summaries(items []DisplayItem) []CategorySummary {
	byCat := groupByCategory(items)
	trending := a.trendingSet(byCat)

	out := make([]CategorySummary, 0, len(a.categories))
	for _, cat := range a.categories {
		group := byCat[cat]
		out = append(out, CategorySummary{
			ID:           slugify(string(cat)),
			Title:        cat,
			ProductCount: len(group),
			PriceRange:   priceRange(group),
			TopBrands:    topBrands(group, 4),
			PopularItems: popularItems(group, 3),
			Trending:     trending[cat],
		})
	}
	return out
}

// Stats computes the storefront statistics report. An empty input list
// yields the exact zero report: zero totals and empty (not null) slices.
func (a *Aggregator) Stats(items []DisplayItem) StatsReport {
	report := StatsReport{
		Categories:        []CategoryCount{},
		PriceDistribution: []PriceBucket{},
		Suppliers:         []string{},
		Trending:          []string{},
	}
	if len(items) == 0 {
		return report
	}

	report.TotalTools = len(items)

	byCat := groupByCategory(items)
	trending := a.trendingSet(byCat)
	for _, cat := range a.categories {
		group := byCat[cat]
		if len(group) == 0 {
			continue
		}
		report.Categories = append(report.Categories, CategoryCount{
			Name:       cat,
			Count:      len(group),
			Percentage: percentage(len(group), len(items)),
		})
		if trending[cat] {
			report.Trending = append(report.Trending, string(cat))
		}
	}

	// Histogram and average run over parseable positive prices only.
	var (
		priced  int
		total   decimal.Decimal
		buckets = make([]int, len(priceBucketBounds))
	)
	for _, item := range items {
		p, ok := ParsePrice(item.Price)
		if !ok || !p.IsPositive() {
			continue
		}
		priced++
		total = total.Add(p)
		buckets[bucketIndex(p)]++
	}
	if priced > 0 {
		avg := total.DivRound(decimal.NewFromInt(int64(priced)), 2)
		report.AveragePrice = avg.InexactFloat64()
		for i, b := range priceBucketBounds {
			report.PriceDistribution = append(report.PriceDistribution, PriceBucket{
				Range:      b.label,
				Count:      buckets[i],
				Percentage: percentage(buckets[i], priced),
			})
		}
	}

	seen := map[string]struct{}{}
	for _, item := range items {
		if item.Supplier == "" {
			continue
		}
		if _, ok := seen[item.Supplier]; ok {
			continue
		}
		seen[item.Supplier] = struct{}{}
		report.Suppliers = append(report.Suppliers, item.Supplier)
	}

	return report
}

func groupByCategory(items []DisplayItem) map[DisplayCategory][]DisplayItem {
	byCat := make(map[DisplayCategory][]DisplayItem)
	for _, item := range items {
		byCat[item.Category] = append(byCat[item.Category], item)
	}
	return byCat
}

// trendingSet marks categories whose item count is strictly above the
// mean count of non-empty categories.
func (a *Aggregator) trendingSet(byCat map[DisplayCategory][]DisplayItem) map[DisplayCategory]bool {
	out := make(map[DisplayCategory]bool, len(a.categories))
	nonEmpty := 0
	sum := 0
	for _, group := range byCat {
		if len(group) == 0 {
			continue
		}
		nonEmpty++
		sum += len(group)
	}
	if nonEmpty == 0 {
		return out
	}
	mean := float64(sum) / float64(nonEmpty)
	for cat, group := range byCat {
		out[cat] = float64(len(group)) > mean
	}
	return out
}

// priceRange renders the min–max span of the parseable positive prices
// in a group. Items that fail price parsing still count towards the
// category size, they just can't contribute to the range.
func priceRange(items []DisplayItem) string {
	var lo, hi decimal.Decimal
	found := false
	for _, item := range items {
		p, ok := ParsePrice(item.Price)
		if !ok || !p.IsPositive() {
			continue
		}
		if !found {
			lo, hi = p, p
			found = true
			continue
		}
		if p.LessThan(lo) {
			lo = p
		}
		if p.GreaterThan(hi) {
			hi = p
		}
	}
	if !found {
		return PriceOnRequest
	}
	if lo.Equal(hi) {
		return FormatPrice(lo)
	}
	return FormatPrice(lo) + " – " + FormatPrice(hi)
}

func topBrands(items []DisplayItem, limit int) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, item := range items {
		if item.Brand == "" {
			continue
		}
		if _, ok := seen[item.Brand]; ok {
			continue
		}
		seen[item.Brand] = struct{}{}
		out = append(out, item.Brand)
		if len(out) == limit {
			break
		}
	}
	return out
}

func popularItems(items []DisplayItem, limit int) []PopularItem {
	out := []PopularItem{}
	for _, item := range items {
		h := NameHash(item.Name)
		out = append(out, PopularItem{
			Name:   item.Name,
			Rating: 3.5 + float64(h%15)/10, // 3.5 .. 4.9
			Sales:  120 + h%880,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

// percentage rounds half-up and guards the zero-total case so an empty
// input can never leak NaN into a payload.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}
