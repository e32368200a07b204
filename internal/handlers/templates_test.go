package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-display/internal/handlers"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/sbilibin2017/gw-currency-display/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clinicCRM = models.Template{ID: "clinic-crm", Name: "Clinic CRM", Industry: "Healthcare", Category: "CRM", BaseCost: 150000}
	fleetCRM  = models.Template{ID: "fleet-crm", Name: "Fleet CRM", Industry: "Logistics", Category: "CRM", BaseCost: 90000}
)

func priced(ts []models.Template, cc *services.CurrencyContext) ([]models.PricedTemplate, error) {
	out := make([]models.PricedTemplate, 0, len(ts))
	for _, t := range ts {
		out = append(out, models.PricedTemplate{Template: t, StartingPrice: fmt.Sprintf("%s:%d", cc.Active, t.BaseCost)})
	}
	return out, nil
}

func TestListTemplatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := handlers.NewMockTemplateCatalog(ctrl)
	mockResolver := handlers.NewMockCurrencyResolver(ctrl)
	handler := handlers.NewListTemplatesHandler(mockCatalog, mockResolver, knownVisitor)

	t.Run("success", func(t *testing.T) {
		filter := models.TemplateFilter{Industry: "Healthcare", Category: "all", Budget: "100000-"}
		mockCatalog.EXPECT().Filter(filter).Return([]models.Template{clinicCRM}, nil)
		mockResolver.EXPECT().Resolve(gomock.Any(), nil, "v1", gomock.Any()).
			Return(currencyContext(models.USD, services.OriginDetected), nil)
		mockCatalog.EXPECT().Price([]models.Template{clinicCRM}, gomock.Any()).DoAndReturn(priced)
		mockCatalog.EXPECT().Industries().Return([]string{"Healthcare"})
		mockCatalog.EXPECT().Categories().Return([]string{"CRM"})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/templates?industry=Healthcare&category=all&budget=100000-", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body models.TemplatesResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, models.USD, body.Currency)
		assert.Equal(t, []string{"Healthcare"}, body.Industries)
		assert.Equal(t, []string{"CRM"}, body.Categories)
		require.Len(t, body.Templates, 1)
		assert.Equal(t, "clinic-crm", body.Templates[0].ID)
		assert.Equal(t, "USD:150000", body.Templates[0].StartingPrice)
	})

	t.Run("invalid_budget", func(t *testing.T) {
		mockCatalog.EXPECT().Filter(models.TemplateFilter{Budget: "cheap"}).
			Return(nil, fmt.Errorf("%w: %q", services.ErrInvalidBudget, "cheap"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/templates?budget=cheap", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid budget"}`, w.Body.String())
	})

	t.Run("pricing_error", func(t *testing.T) {
		mockCatalog.EXPECT().Filter(models.TemplateFilter{}).Return([]models.Template{clinicCRM}, nil)
		mockResolver.EXPECT().Resolve(gomock.Any(), nil, "v1", gomock.Any()).
			Return(currencyContext(models.USD, services.OriginDetected), nil)
		mockCatalog.EXPECT().Price(gomock.Any(), gomock.Any()).Return(nil, services.ErrUnknownCurrency)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to price templates"}`, w.Body.String())
	})
}

func TestGetTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := handlers.NewMockTemplateCatalog(ctrl)
	mockResolver := handlers.NewMockCurrencyResolver(ctrl)

	r := chi.NewRouter()
	r.Get("/templates/{id}", handlers.NewGetTemplateHandler(mockCatalog, mockResolver, knownVisitor))

	t.Run("found_with_related", func(t *testing.T) {
		mockCatalog.EXPECT().Find("clinic-crm").Return(clinicCRM, true)
		mockResolver.EXPECT().Resolve(gomock.Any(), nil, "v1", gomock.Any()).
			Return(currencyContext(models.EUR, services.OriginUser), nil)
		mockCatalog.EXPECT().Related(clinicCRM).Return([]models.Template{fleetCRM})
		mockCatalog.EXPECT().Price([]models.Template{clinicCRM, fleetCRM}, gomock.Any()).DoAndReturn(priced)

		req := httptest.NewRequest(http.MethodGet, "/templates/clinic-crm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body models.TemplateDetailResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, models.EUR, body.Currency)
		assert.Equal(t, "clinic-crm", body.Template.ID)
		assert.Equal(t, "EUR:150000", body.Template.StartingPrice)
		require.Len(t, body.Related, 1)
		assert.Equal(t, "fleet-crm", body.Related[0].ID)
	})

	t.Run("not_found", func(t *testing.T) {
		mockCatalog.EXPECT().Find("missing").Return(models.Template{}, false)

		req := httptest.NewRequest(http.MethodGet, "/templates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Template not found"}`, w.Body.String())
	})
}
