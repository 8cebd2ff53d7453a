package catalog

// DisplayCategory is one of the fixed set of categories the storefront
// groups items under. Values are the display titles themselves; they are
// part of the JSON contract with the frontend.
type DisplayCategory string

const (
	CategoryPowerTools    DisplayCategory = "Power Tools"
	CategoryHandTools     DisplayCategory = "Hand Tools"
	CategoryTestEquipment DisplayCategory = "Test Equipment"
	CategorySafetyGear    DisplayCategory = "Safety Gear"
	CategoryAccessories   DisplayCategory = "Accessories"

	CategoryCables      DisplayCategory = "Cable & Wiring"
	CategoryLighting    DisplayCategory = "Lighting"
	CategorySockets     DisplayCategory = "Switches & Sockets"
	CategoryConsumables DisplayCategory = "Consumables"

	// CategoryOther marks non-electrical rows that slipped into the source
	// table. Items classified as Other are dropped from every view.
	CategoryOther DisplayCategory = "Other"
)

// DisplayItem is the presentation-ready shape of one product row.
// Field names are consumed verbatim by the frontend; do not rename.
type DisplayItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Category    DisplayCategory `json:"category"`
	Price       string          `json:"price"`
	Supplier    string          `json:"supplier"`
	Image       string          `json:"image"`
	StockStatus string          `json:"stockStatus"`
	IsOnSale    bool            `json:"isOnSale"`
	SalePrice   string          `json:"salePrice,omitempty"`
	Highlights  []string        `json:"highlights"`
	ProductURL  string          `json:"productUrl,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ToolCategory is the compact per-category line used by the tools view.
type ToolCategory struct {
	Name       DisplayCategory `json:"name"`
	Count      int             `json:"count"`
	PriceRange string          `json:"priceRange"`
	Trending   bool            `json:"trending"`
}

// PopularItem carries the synthetic rating/sales figures shown on
// category cards. Both numbers are stable functions of the item name.
type PopularItem struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Sales  int     `json:"sales"`
}

// CategorySummary is the rich per-category aggregate for the materials view.
type CategorySummary struct {
	ID           string          `json:"id"`
	Title        DisplayCategory `json:"title"`
	ProductCount int             `json:"productCount"`
	PriceRange   string          `json:"priceRange"`
	TopBrands    []string        `json:"topBrands"`
	PopularItems []PopularItem   `json:"popularItems"`
	Trending     bool            `json:"trending"`
}

// CategoryCount is one slice of the stats breakdown.
type CategoryCount struct {
	Name       DisplayCategory `json:"name"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// PriceBucket is one bar of the price distribution histogram.
type PriceBucket struct {
	Range      string `json:"range"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// StatsReport is the storefront statistics payload.
type StatsReport struct {
	TotalTools        int             `json:"totalTools"`
	Categories        []CategoryCount `json:"categories"`
	PriceDistribution []PriceBucket   `json:"priceDistribution"`
	AveragePrice      float64         `json:"averagePrice"`
	Suppliers         []string        `json:"suppliers"`
	Trending          []string        `json:"trending"`
}

// DealsResult is the deals view payload: the full item list with
// synthesised sale flags applied, the on-sale subset, and rankings.
type DealsResult struct {
	Tools        []DisplayItem `json:"tools"`
	Deals        []DisplayItem `json:"deals"`
	DealOfTheDay *DisplayItem  `json:"dealOfTheDay"`
	TopDiscounts []DisplayItem `json:"topDiscounts"`
	DealsCount   int           `json:"dealsCount"`
}
