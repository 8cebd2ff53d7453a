package catalog

import (
	"testing"

	"toolhub/internal/domain/products"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestNormaliseDefaults(t *testing.T) {
	n := NewNormaliser(DefaultSupplierDomains)

	item := n.Normalise(products.Record{ID: 7, Name: "Voltage Tester"})

	if item.Price != "£0.00" {
		t.Errorf("Price: got %q, want %q", item.Price, "£0.00")
	}
	if item.Image != PlaceholderImage {
		t.Errorf("Image: got %q, want %q", item.Image, PlaceholderImage)
	}
	if item.Supplier != SupplierUnknown {
		t.Errorf("Supplier: got %q, want %q", item.Supplier, SupplierUnknown)
	}
	if item.StockStatus != StockIn {
		t.Errorf("StockStatus: got %q, want %q", item.StockStatus, StockIn)
	}
	if item.Highlights == nil || len(item.Highlights) != 0 {
		t.Errorf("Highlights: got %#v, want empty non-nil slice", item.Highlights)
	}
	if item.IsOnSale {
		t.Error("IsOnSale should default to false")
	}
}

func TestNormalisePriceFormats(t *testing.T) {
	n := NewNormaliser(DefaultSupplierDomains)

	tests := []struct {
		raw  *string
		want string
	}{
		{strptr("119.99"), "£119.99"},
		{strptr("£45.9"), "£45.90"},
		{strptr("1,299"), "£1299.00"},
		{strptr("not a price"), "£0.00"},
		{nil, "£0.00"},
	}
	for _, tt := range tests {
		item := n.Normalise(products.Record{Name: "X", CurrentPrice: tt.raw})
		if item.Price != tt.want {
			t.Errorf("CurrentPrice %v: got %q, want %q", tt.raw, item.Price, tt.want)
		}
	}
}

func TestNormaliseSupplier(t *testing.T) {
	n := NewNormaliser(DefaultSupplierDomains)

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.screwfix.com/p/dewalt-drill/123", "Screwfix"},
		{"https://www.toolstation.com/p/456", "Toolstation"},
		{"https://www.cef.co.uk/catalogue/products/789", "CEF"},
		{"https://example.com/item", SupplierUnknown},
		{"", SupplierUnknown},

		// only the host decides: a supplier name in the path or a bare
		// path with no host must not match
		{"https://example.com/amazon-drill-bits", SupplierUnknown},
		{"https://www.amazon.co.uk/dp/B0TOOL", "Amazon"},
		{"/products/screwfix-clone", SupplierUnknown},
	}
	for _, tt := range tests {
		if got := n.Supplier(tt.url); got != tt.want {
			t.Errorf("Supplier(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestNormaliseStockStatus(t *testing.T) {
	n := NewNormaliser(DefaultSupplierDomains)

	explicit := n.Normalise(products.Record{Name: "X", StockStatus: strptr(StockLow)})
	if explicit.StockStatus != StockLow {
		t.Errorf("explicit status ignored: got %q", explicit.StockStatus)
	}

	out := n.Normalise(products.Record{Name: "X", InStock: boolptr(false)})
	if out.StockStatus != StockOut {
		t.Errorf("in_stock=false: got %q, want %q", out.StockStatus, StockOut)
	}

	in := n.Normalise(products.Record{Name: "X", InStock: boolptr(true)})
	if in.StockStatus != StockIn {
		t.Errorf("in_stock=true: got %q, want %q", in.StockStatus, StockIn)
	}
}

func TestNormaliseRealSaleData(t *testing.T) {
	n := NewNormaliser(DefaultSupplierDomains)

	item := n.Normalise(products.Record{
		Name:         "Combi Drill",
		CurrentPrice: strptr("89.99"),
		RegularPrice: strptr("119.99"),
		IsOnSale:     true,
	})
	if !item.IsOnSale {
		t.Fatal("IsOnSale should carry through")
	}
	if item.Price != "£119.99" {
		t.Errorf("headline price: got %q, want regular £119.99", item.Price)
	}
	if item.SalePrice != "£89.99" {
		t.Errorf("sale price: got %q, want £89.99", item.SalePrice)
	}

	// is_on_sale without a believable regular price is ignored.
	bogus := n.Normalise(products.Record{
		Name:         "Combi Drill",
		CurrentPrice: strptr("89.99"),
		RegularPrice: strptr("50.00"),
		IsOnSale:     true,
	})
	if bogus.IsOnSale {
		t.Error("sale flag should drop when regular <= current")
	}
}

func TestBuildItemsDropsExcluded(t *testing.T) {
	cl := newToolClassifier()
	n := NewNormaliser(DefaultSupplierDomains)

	recs := []products.Record{
		{ID: 1, Name: "Drill Driver 18V", Category: "power-tools", CurrentPrice: strptr("120.00")},
		{ID: 2, Name: "Kitchen Mixer Tap", Category: "plumbing", CurrentPrice: strptr("60.00")},
		{ID: 3, Name: "Multimeter Pro", Category: "test-equipment", CurrentPrice: strptr("45.99")},
	}
	items := BuildItems(recs, cl, n)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (excluded category dropped)", len(items))
	}
	if items[0].Category != CategoryPowerTools {
		t.Errorf("items[0].Category = %q, want %q", items[0].Category, CategoryPowerTools)
	}
	if items[1].Category != CategoryTestEquipment {
		t.Errorf("items[1].Category = %q, want %q", items[1].Category, CategoryTestEquipment)
	}
}
