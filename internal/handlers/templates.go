package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/sbilibin2017/gw-currency-display/internal/services"
)

//go:generate mockgen -source=templates.go -destination=templates_mock.go -package=handlers

// TemplateCatalog defines the interface that the catalog must implement.
type TemplateCatalog interface {
	Industries() []string
	Categories() []string
	Filter(f models.TemplateFilter) ([]models.Template, error)
	Find(id string) (models.Template, bool)
	Related(t models.Template) []models.Template
	Price(ts []models.Template, cc *services.CurrencyContext) ([]models.PricedTemplate, error)
}

func filterFromRequest(r *http.Request) models.TemplateFilter {
	q := r.URL.Query()
	return models.TemplateFilter{
		Industry: q.Get("industry"),
		Category: q.Get("category"),
		Budget:   q.Get("budget"),
	}
}

// NewListTemplatesHandler returns an HTTP handler for the filtered template catalog.
// @Summary List templates
// @Description Returns catalog templates priced in the visitor's currency
// @Tags templates
// @Produce json
// @Param industry query string false "Industry, or all"
// @Param category query string false "Category, or all"
// @Param budget query string false "INR budget range min-max, max empty or 0 for open ended" example(100000-300000)
// @Success 200 {object} models.TemplatesResponse "Templates"
// @Failure 400 {object} models.ErrorResponse "Invalid budget"
// @Failure 401 {object} models.ErrorResponse "No visitor session"
// @Failure 500 {object} models.ErrorResponse "Templates could not be priced"
// @Router /templates [get]
func NewListTemplatesHandler(catalog TemplateCatalog, svc CurrencyResolver, visitor VisitorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := visitor(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ts, err := catalog.Filter(filterFromRequest(r))
		if err != nil {
			if errors.Is(err, services.ErrInvalidBudget) {
				writeError(w, http.StatusBadRequest, "Invalid budget")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to filter templates")
			return
		}

		cc, err := svc.Resolve(r.Context(), nil, visitorID, clientIP(r))
		if err != nil {
			logger.Log.Errorw("failed to resolve currency", "visitor_id", visitorID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to resolve currency")
			return
		}

		priced, err := catalog.Price(ts, cc)
		if err != nil {
			logger.Log.Errorw("failed to price templates", "currency", cc.Active, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to price templates")
			return
		}

		writeJSON(w, http.StatusOK, models.TemplatesResponse{
			Currency:   cc.Active,
			Industries: catalog.Industries(),
			Categories: catalog.Categories(),
			Templates:  priced,
		})
	}
}

// NewGetTemplateHandler returns an HTTP handler for a single template and its related items.
// @Summary Get template
// @Description Returns a template and up to three related templates, priced in the visitor's currency
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.TemplateDetailResponse "Template"
// @Failure 401 {object} models.ErrorResponse "No visitor session"
// @Failure 404 {object} models.ErrorResponse "Template not found"
// @Failure 500 {object} models.ErrorResponse "Template could not be priced"
// @Router /templates/{id} [get]
func NewGetTemplateHandler(catalog TemplateCatalog, svc CurrencyResolver, visitor VisitorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := visitor(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		t, ok := catalog.Find(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Template not found")
			return
		}

		cc, err := svc.Resolve(r.Context(), nil, visitorID, clientIP(r))
		if err != nil {
			logger.Log.Errorw("failed to resolve currency", "visitor_id", visitorID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to resolve currency")
			return
		}

		priced, err := catalog.Price(append([]models.Template{t}, catalog.Related(t)...), cc)
		if err != nil {
			logger.Log.Errorw("failed to price template", "template_id", t.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to price template")
			return
		}

		writeJSON(w, http.StatusOK, models.TemplateDetailResponse{
			Currency: cc.Active,
			Template: priced[0],
			Related:  priced[1:],
		})
	}
}
