package catalog

// Default configuration tables. All of these are read-only after init;
// callers needing different behaviour construct components with their
// own tables instead of mutating these.

// DefaultToolKeywordGroups drives tool classification. Order matters:
// first matching group wins, so the more specific trades come first and
// generic hand-tool words act as the safety net.
var DefaultToolKeywordGroups = []KeywordGroup{
	{CategoryPowerTools, []string{"drill", "driver", "saw", "grinder", "sander", "multi-tool", "planer", "power", "impact"}},
	{CategoryTestEquipment, []string{"test", "meter", "detector", "clamp", "voltage", "socket tester"}},
	{CategorySafetyGear, []string{"safety", "glove", "goggle", "helmet", "boot", "hi-vis", "knee pad"}},
	{CategoryAccessories, []string{"accessor", "bit set", "blade", "battery", "charger", "holster", "tool bag", "case"}},
	{CategoryHandTools, []string{"hand", "plier", "screwdriver", "cutter", "stripper", "knife", "spanner", "hammer", "level"}},
}

// DefaultMaterialKeywordGroups drives materials classification.
var DefaultMaterialKeywordGroups = []KeywordGroup{
	{CategoryCables, []string{"cable", "wire", "flex", "conduit", "trunking"}},
	{CategoryLighting, []string{"light", "lamp", "led", "downlight", "batten", "bulb"}},
	{CategorySockets, []string{"socket", "switch", "dimmer", "faceplate", "spur", "grid"}},
	{CategoryConsumables, []string{"tape", "fixing", "screw", "clip", "gland", "connector", "crimp"}},
}

// DefaultExcludedCategories are raw source categories for stock that is
// not electrical at all; the upstream scrape occasionally picks these up
// and they must never reach a storefront view.
var DefaultExcludedCategories = []string{
	"appliances",
	"plumbing",
	"decorating",
}

// DefaultSupplierDomains is the ordered list of URL host fragments a
// product link is checked against; first match names the supplier.
var DefaultSupplierDomains = []SupplierDomain{
	{"screwfix", "Screwfix"},
	{"toolstation", "Toolstation"},
	{"cef.co", "CEF"},
	{"wickes", "Wickes"},
	{"amazon", "Amazon"},
	{"ebay", "eBay"},
}

// DefaultSaleKeywords mark an item as on sale when present in its name.
var DefaultSaleKeywords = []string{"sale", "clearance", "reduced", "offer", "deal", "bargain"}

// DefaultSaleEndings are the "psychological" price endings treated as a
// sale signal.
var DefaultSaleEndings = []string{"99", "95", "49"}

// PriceOnRequest is rendered when a category holds no parseable prices.
const PriceOnRequest = "Price on request"

// DefaultToolCategories is the fallback tools view, served when the
// product store is unreachable. Every configured category appears with a
// zero count, matching the shape of the live view.
var DefaultToolCategories = []ToolCategory{
	{CategoryPowerTools, 0, PriceOnRequest, false},
	{CategoryTestEquipment, 0, PriceOnRequest, false},
	{CategorySafetyGear, 0, PriceOnRequest, false},
	{CategoryAccessories, 0, PriceOnRequest, false},
	{CategoryHandTools, 0, PriceOnRequest, false},
}

// DefaultMaterialSummaries is the fallback materials view.
var DefaultMaterialSummaries = []CategorySummary{
	{ID: "cable-wiring", Title: CategoryCables, PriceRange: PriceOnRequest, TopBrands: []string{}, PopularItems: []PopularItem{}},
	{ID: "lighting", Title: CategoryLighting, PriceRange: PriceOnRequest, TopBrands: []string{}, PopularItems: []PopularItem{}},
	{ID: "switches-sockets", Title: CategorySockets, PriceRange: PriceOnRequest, TopBrands: []string{}, PopularItems: []PopularItem{}},
	{ID: "consumables", Title: CategoryConsumables, PriceRange: PriceOnRequest, TopBrands: []string{}, PopularItems: []PopularItem{}},
}
