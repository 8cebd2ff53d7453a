package products

// Record is one row of the hosted product table, as scraped from the
// supplier sites. The table is owned by the scrape pipeline and is
// read-only from this service; optional columns stay pointers so the
// normaliser can tell "absent" from zero values.
type Record struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Brand              *string  `json:"brand,omitempty"`
	Category           string   `json:"category"`
	CurrentPrice       *string  `json:"current_price"`
	RegularPrice       *string  `json:"regular_price,omitempty"`
	IsOnSale           bool     `json:"is_on_sale"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
	ImageURL           *string  `json:"image_url,omitempty"`
	ProductURL         *string  `json:"product_url,omitempty"`
	StockStatus        *string  `json:"stock_status,omitempty"`
	InStock            *bool    `json:"in_stock,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Highlights         []string `json:"highlights,omitempty"`
}
