package catalog

import (
	"net/url"
	"strings"

	"toolhub/internal/domain/products"
)

// SupplierDomain pairs a URL host fragment with the supplier name shown
// in the UI.
type SupplierDomain struct {
	Fragment string
	Name     string
}

const (
	// SupplierUnknown is the sentinel for product links that match no
	// known supplier domain. It must never be empty: the UI renders it.
	SupplierUnknown = "Unknown"

	// PlaceholderImage is served when a row carries no image URL.
	PlaceholderImage = "/placeholder.svg"

	StockIn  = "In Stock"
	StockOut = "Out of Stock"
	StockLow = "Low Stock"
)

// Normaliser turns raw product rows into display items. It never fails:
// every optional field has a default and unparseable prices render as
// the formatted zero value.
type Normaliser struct {
	suppliers []SupplierDomain
}

func NewNormaliser(suppliers []SupplierDomain) *Normaliser {
	return &Normaliser{suppliers: suppliers}
}

// Normalise maps one row to its display shape. Category assignment is
// the classifier's job; the returned item carries an empty category.
func (n *Normaliser) Normalise(rec products.Record) DisplayItem {
	item := DisplayItem{
		ID:          rec.ID,
		Name:        rec.Name,
		Image:       PlaceholderImage,
		Highlights:  []string{},
		StockStatus: StockIn,
	}

	if rec.Brand != nil {
		item.Brand = *rec.Brand
	}
	if rec.ImageURL != nil && *rec.ImageURL != "" {
		item.Image = *rec.ImageURL
	}
	if rec.ProductURL != nil {
		item.ProductURL = *rec.ProductURL
	}
	if rec.Description != nil {
		item.Description = *rec.Description
	}
	if len(rec.Highlights) > 0 {
		item.Highlights = rec.Highlights
	}

	item.Supplier = n.Supplier(item.ProductURL)
	item.StockStatus = stockStatus(rec)

	current, currentOK := ParsePrice(deref(rec.CurrentPrice))
	if currentOK {
		item.Price = FormatPrice(current)
	} else {
		item.Price = FormatPrice(zeroPrice)
	}

	// A row the scraper already saw discounted keeps its real sale data:
	// regular price becomes the headline price and the current price the
	// sale price. The deal synthesiser leaves such items alone.
	if rec.IsOnSale {
		if regular, ok := ParsePrice(deref(rec.RegularPrice)); ok && currentOK && current.LessThan(regular) {
			item.IsOnSale = true
			item.Price = FormatPrice(regular)
			item.SalePrice = FormatPrice(current)
		}
	}

	return item
}

// Supplier resolves a product URL against the known supplier domains,
// first match wins. Only the host is inspected, so a retailer name in
// another shop's path ("/amazon-drill-bits") cannot misattribute.
func (n *Normaliser) Supplier(productURL string) string {
	if productURL == "" {
		return SupplierUnknown
	}
	u, err := url.Parse(productURL)
	if err != nil || u.Host == "" {
		return SupplierUnknown
	}
	host := strings.ToLower(u.Host)
	for _, s := range n.suppliers {
		if strings.Contains(host, s.Fragment) {
			return s.Name
		}
	}
	return SupplierUnknown
}

func stockStatus(rec products.Record) string {
	if rec.StockStatus != nil && *rec.StockStatus != "" {
		return *rec.StockStatus
	}
	if rec.InStock != nil && !*rec.InStock {
		return StockOut
	}
	return StockIn
}

// BuildItems runs classification and normalisation over raw rows in
// order, dropping rows classified as CategoryOther.
func BuildItems(recs []products.Record, cl *Classifier, n *Normaliser) []DisplayItem {
	items := make([]DisplayItem, 0, len(recs))
	for _, rec := range recs {
		cat := cl.Classify(rec.Category, rec.Name)
		if cat == CategoryOther {
			continue
		}
		item := n.Normalise(rec)
		item.Category = cat
		items = append(items, item)
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
