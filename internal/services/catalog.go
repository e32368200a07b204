package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-currency-display/internal/dom"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// HubGridLimit caps the number of cards on the hub page.
	HubGridLimit = 9
	// RelatedLimit caps the related templates on a detail page.
	RelatedLimit = 3

	filterAll       = "all"
	featuresOnCard  = 4
	placeholderShot = "images/placeholder-template.svg"
)

var (
	ErrInvalidBudget    = errors.New("invalid budget filter")
	ErrTemplateNotFound = errors.New("template not found")
)

// GridOptions names the elements a grid render targets.
type GridOptions struct {
	GridID  string
	EmptyID string
	Limit   int // 0 means no limit
}

var (
	SolutionsGrid = GridOptions{GridID: "templates-grid", EmptyID: "no-results"}
	HubGrid       = GridOptions{GridID: "apps-templates-grid", EmptyID: "apps-no-results", Limit: HubGridLimit}
	RelatedGrid   = GridOptions{GridID: "related-templates-grid", EmptyID: "no-related-templates"}
)

var cardTemplate = template.Must(template.New("cards").Funcs(template.FuncMap{
	"preview": func(t models.Template) string {
		if len(t.PreviewScreens) > 0 && t.PreviewScreens[0] != "" {
			return t.PreviewScreens[0]
		}
		return placeholderShot
	},
	"firstFeatures": func(f []string) []string {
		if len(f) > featuresOnCard {
			return f[:featuresOnCard]
		}
		return f
	},
	"moreFeatures": func(f []string) int {
		return len(f) - featuresOnCard
	},
	"delivery": func(days int) string {
		if days <= 0 {
			return "Custom"
		}
		return strconv.Itoa(days) + " days"
	},
	"industry": func(s string) string {
		if s == "" {
			return "Multi-Industry"
		}
		return s
	},
}).Parse(`{{range .}}<article class="template-card" data-template-id="{{.ID}}">
<div class="template-media"><span class="template-badge">{{industry .Industry}}</span><img src="{{preview .Template}}" alt="{{.Name}}" loading="lazy"></div>
<div class="template-body">
<h3>{{.Name}}</h3>
<p class="template-tagline">{{.Tagline}}</p>
<div class="template-features">{{range firstFeatures .Features}}<span class="feature-tag">✓ {{.}}</span>{{end}}{{if gt (len .Features) 4}}<span class="feature-more">+{{moreFeatures .Features}} more</span>{{end}}</div>
<div class="template-meta"><div><strong class="template-price" data-base-cost="{{.BaseCost}}">{{.StartingPrice}}</strong><span>Starting price</span></div><div><strong>{{delivery .BaseDurationDays}}</strong><span>Delivery time</span></div></div>
<div class="template-actions">{{if .LiveAppURL}}<a href="{{.LiveAppURL}}" class="btn-primary" target="_blank" rel="noopener">Launch Demo</a>{{end}}<a href="template-detail.html?id={{.ID}}" class="btn-secondary">View Details</a></div>
</div>
</article>
{{end}}`))

// Catalog holds the template catalog and renders its cards.
type Catalog struct {
	client *http.Client

	mu  sync.RWMutex
	doc models.CatalogDocument
}

// NewCatalog creates an empty catalog. client is used for URL sources.
func NewCatalog(client *http.Client) *Catalog {
	if client == nil {
		client = http.DefaultClient
	}
	return &Catalog{client: client}
}

// Load reads templates.json from a file path or an http(s) URL and replaces
// the catalog.
func (c *Catalog) Load(ctx context.Context, location string) error {
	data, err := c.read(ctx, location)
	if err != nil {
		logger.Log.Errorw("error loading templates", "location", location, "error", err)
		return err
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Log.Errorw("error decoding templates", "location", location, "error", err)
		return fmt.Errorf("decode catalog: %w", err)
	}

	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()

	logger.Log.Infow("templates loaded", "count", len(doc.Templates))
	return nil
}

func (c *Catalog) read(ctx context.Context, location string) ([]byte, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		return os.ReadFile(location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch templates: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Templates returns every template in catalog order.
func (c *Catalog) Templates() []models.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Template, len(c.doc.Templates))
	copy(out, c.doc.Templates)
	return out
}

// Industries returns the declared industries, or the sorted distinct
// industries of the templates when none are declared.
func (c *Catalog) Industries() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.doc.Industries) > 0 {
		return append([]string(nil), c.doc.Industries...)
	}
	return distinct(c.doc.Templates, func(t models.Template) string { return t.Industry })
}

// Categories mirrors Industries for categories.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.doc.Categories) > 0 {
		return append([]string(nil), c.doc.Categories...)
	}
	return distinct(c.doc.Templates, func(t models.Template) string { return t.Category })
}

func distinct(ts []models.Template, field func(models.Template) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range ts {
		v := field(t)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

type budgetRange struct {
	min, max int64 // max 0 means open ended
}

func parseBudget(s string) (*budgetRange, error) {
	if s == "" || s == filterAll {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBudget, s)
	}
	var b budgetRange
	var err error
	if lo != "" {
		if b.min, err = strconv.ParseInt(lo, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBudget, s)
		}
	}
	if hi != "" {
		if b.max, err = strconv.ParseInt(hi, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBudget, s)
		}
	}
	return &b, nil
}

func active(v string) bool {
	return v != "" && v != filterAll
}

// Filter returns the templates matching every active field of f.
func (c *Catalog) Filter(f models.TemplateFilter) ([]models.Template, error) {
	budget, err := parseBudget(f.Budget)
	if err != nil {
		return nil, err
	}

	out := make([]models.Template, 0)
	for _, t := range c.Templates() {
		if active(f.Industry) && t.Industry != f.Industry {
			continue
		}
		if active(f.Category) && t.Category != f.Category {
			continue
		}
		if budget != nil {
			if t.BaseCost < budget.min {
				continue
			}
			if budget.max != 0 && t.BaseCost > budget.max {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// Find looks a template up by id.
func (c *Catalog) Find(id string) (models.Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.doc.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.Template{}, false
}

// Related returns up to RelatedLimit other templates sharing t's category.
func (c *Catalog) Related(t models.Template) []models.Template {
	out := make([]models.Template, 0, RelatedLimit)
	for _, other := range c.Templates() {
		if len(out) == RelatedLimit {
			break
		}
		if other.Category == t.Category && other.ID != t.ID {
			out = append(out, other)
		}
	}
	return out
}

// Price attaches starting prices in the context's active currency.
func (c *Catalog) Price(ts []models.Template, cc *CurrencyContext) ([]models.PricedTemplate, error) {
	f := cc.Formatter()
	out := make([]models.PricedTemplate, 0, len(ts))
	for _, t := range ts {
		price, err := f.FormatStartingPrice(decimal.NewFromInt(t.BaseCost), cc.Active)
		if err != nil {
			return nil, err
		}
		out = append(out, models.PricedTemplate{Template: t, StartingPrice: price})
	}
	return out, nil
}

// RenderGrid regenerates the grid element for the filtered templates and
// toggles the empty-state element. Pages without the grid are left alone.
func (c *Catalog) RenderGrid(doc *dom.Document, cc *CurrencyContext, f models.TemplateFilter, opts GridOptions) error {
	ts, err := c.Filter(f)
	if err != nil {
		return err
	}
	return c.render(doc, cc, ts, opts)
}

// RenderRelated fills the related grid of a detail page.
func (c *Catalog) RenderRelated(doc *dom.Document, cc *CurrencyContext, id string, opts GridOptions) error {
	t, ok := c.Find(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return c.render(doc, cc, c.Related(t), opts)
}

func (c *Catalog) render(doc *dom.Document, cc *CurrencyContext, ts []models.Template, opts GridOptions) error {
	grid := doc.FindByID(opts.GridID)
	if grid == nil {
		return nil
	}
	empty := doc.FindByID(opts.EmptyID)

	if len(ts) == 0 {
		dom.RemoveChildren(grid)
		dom.SetAttr(grid, "style", "display: none")
		if empty != nil {
			dom.SetAttr(empty, "style", "display: block")
		}
		return nil
	}

	if opts.Limit > 0 && len(ts) > opts.Limit {
		ts = ts[:opts.Limit]
	}
	priced, err := c.Price(ts, cc)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, priced); err != nil {
		return fmt.Errorf("render cards: %w", err)
	}
	nodes, err := dom.ParseFragment(grid, buf.String())
	if err != nil {
		return fmt.Errorf("parse cards: %w", err)
	}

	dom.ReplaceChildren(grid, nodes...)
	dom.SetAttr(grid, "style", "display: grid")
	if empty != nil {
		dom.SetAttr(empty, "style", "display: none")
	}
	return nil
}

// GridHook adapts RenderGrid to a re-render hook for a fixed filter.
func (c *Catalog) GridHook(f models.TemplateFilter, opts GridOptions) RerenderHook {
	return func(ctx context.Context, doc *dom.Document, cc *CurrencyContext) error {
		return c.RenderGrid(doc, cc, f, opts)
	}
}

// RelatedHook adapts RenderRelated to a re-render hook.
func (c *Catalog) RelatedHook(id string, opts GridOptions) RerenderHook {
	return func(ctx context.Context, doc *dom.Document, cc *CurrencyContext) error {
		err := c.RenderRelated(doc, cc, id, opts)
		if errors.Is(err, ErrTemplateNotFound) {
			return nil
		}
		return err
	}
}
