package services

import (
	"context"

	"github.com/sbilibin2017/gw-currency-display/internal/dom"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

type pageRequestKey struct{}

// PageRequest carries the per-request state of a page render: the catalog
// filter from the query string and, on detail pages, the template shown.
type PageRequest struct {
	Filter     models.TemplateFilter
	TemplateID string
}

// WithPageRequest attaches p to ctx for the page hook.
func WithPageRequest(ctx context.Context, p PageRequest) context.Context {
	return context.WithValue(ctx, pageRequestKey{}, p)
}

// PageRequestFromContext returns the request attached by WithPageRequest.
func PageRequestFromContext(ctx context.Context) (PageRequest, bool) {
	p, ok := ctx.Value(pageRequestKey{}).(PageRequest)
	return p, ok
}

// PageRenderer re-renders every currency-dependent section a site page may
// carry. Sections missing from the page are skipped.
type PageRenderer struct {
	catalog  *Catalog
	homepage *HomepagePricing
}

func NewPageRenderer(catalog *Catalog, homepage *HomepagePricing) *PageRenderer {
	return &PageRenderer{catalog: catalog, homepage: homepage}
}

// Hook returns the re-render hook installed on DisplaySync.
func (p *PageRenderer) Hook() RerenderHook {
	return p.Render
}

// Render runs the catalog grids and the homepage pricing against doc.
func (p *PageRenderer) Render(ctx context.Context, doc *dom.Document, cc *CurrencyContext) error {
	req, _ := PageRequestFromContext(ctx)

	var hooks []RerenderHook
	if p.catalog != nil {
		filter := req.Filter
		if _, err := parseBudget(filter.Budget); err != nil {
			logger.Log.Warnw("ignoring budget filter", "budget", filter.Budget, "error", err)
			filter.Budget = ""
		}
		hooks = append(hooks,
			p.catalog.GridHook(filter, SolutionsGrid),
			p.catalog.GridHook(filter, HubGrid),
		)
		if req.TemplateID != "" {
			hooks = append(hooks, p.catalog.RelatedHook(req.TemplateID, RelatedGrid))
		}
	}
	if p.homepage != nil {
		hooks = append(hooks, p.homepage.Hook())
	}

	return ChainHooks(hooks...)(ctx, doc, cc)
}
