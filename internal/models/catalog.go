package models

// Template is a catalog item from templates.json. BaseCost is in INR.
// swagger:model Template
type Template struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Tagline          string   `json:"tagline"`
	Description      string   `json:"description,omitempty"`
	Industry         string   `json:"industry"`
	Category         string   `json:"category"`
	Features         []string `json:"features"`
	TechOptions      []string `json:"techOptions,omitempty"`
	PreviewScreens   []string `json:"previewScreens,omitempty"`
	LiveAppURL       string   `json:"liveAppUrl,omitempty"`
	DemoURL          string   `json:"demoUrl,omitempty"`
	BaseCost         int64    `json:"baseCost"`
	BaseDurationDays int      `json:"baseDurationDays,omitempty"`
}

// CatalogDocument is the top-level shape of templates.json.
type CatalogDocument struct {
	Industries []string   `json:"industries,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Templates  []Template `json:"templates"`
}

// TemplateFilter narrows the catalog. "all" or empty disables a field.
// Budget is "min-max" or "min-" in INR.
type TemplateFilter struct {
	Industry string `json:"industry"`
	Category string `json:"category"`
	Budget   string `json:"budget"`
}

// PricedTemplate is a catalog item with its starting price in the active currency.
// swagger:model PricedTemplate
type PricedTemplate struct {
	Template
	// example: $1,200+
	StartingPrice string `json:"startingPrice"`
}

// TemplatesResponse represents a filtered catalog listing
// swagger:model TemplatesResponse
type TemplatesResponse struct {
	Currency   CurrencyCode     `json:"currency"`
	Industries []string         `json:"industries"`
	Categories []string         `json:"categories"`
	Templates  []PricedTemplate `json:"templates"`
}

// TemplateDetailResponse represents a single template with related items
// swagger:model TemplateDetailResponse
type TemplateDetailResponse struct {
	Currency CurrencyCode     `json:"currency"`
	Template PricedTemplate   `json:"template"`
	Related  []PricedTemplate `json:"related"`
}
