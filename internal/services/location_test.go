package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-display/internal/events"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationDetector_Detect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	const ip = "203.0.113.7"

	tests := []struct {
		name         string
		geo          *models.GeoLocation
		geoErr       error
		wantCurrency models.CurrencyCode
		wantDetected bool
		wantNotice   *models.Notification
	}{
		{
			name:         "country_code_match",
			geo:          &models.GeoLocation{CountryName: "United States", CountryCode: "US"},
			wantCurrency: models.USD,
			wantDetected: true,
			wantNotice: &models.Notification{
				Title:        "Location Detected: United States",
				Body:         "Prices shown in US Dollar ($)",
				DismissAfter: NotificationDismissAfter,
			},
		},
		{
			name:         "country_name_fallback",
			geo:          &models.GeoLocation{CountryName: "Germany"},
			wantCurrency: models.EUR,
			wantDetected: true,
			wantNotice: &models.Notification{
				Title:        "Location Detected: Germany",
				Body:         "Prices shown in Euro (€)",
				DismissAfter: NotificationDismissAfter,
			},
		},
		{
			name:         "india_has_no_notice",
			geo:          &models.GeoLocation{CountryName: "India", CountryCode: "IN"},
			wantCurrency: models.INR,
			wantDetected: true,
		},
		{
			name:         "unmapped_country",
			geo:          &models.GeoLocation{CountryName: "Japan", CountryCode: "JP"},
			wantCurrency: models.INR,
		},
		{
			name:         "lookup_error",
			geoErr:       errors.New("rate limited"),
			wantCurrency: models.INR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := NewMockGeoSource(ctrl)
			pub := NewMockPublisher(ctrl)

			geo.EXPECT().Lookup(ctx, ip).Return(tt.geo, tt.geoErr)

			var published *events.Event
			if tt.wantNotice != nil {
				pub.EXPECT().Publish(ctx, gomock.Any()).
					Do(func(_ context.Context, e events.Event) { published = &e })
			}

			det := NewLocationDetector(geo, pub).Detect(ctx, "visitor-1", ip)

			assert.Equal(t, tt.wantCurrency, det.Currency)
			assert.Equal(t, tt.wantDetected, det.Detected)
			assert.Equal(t, tt.wantNotice, det.Notice)

			if tt.wantNotice != nil {
				require.NotNil(t, published)
				assert.Equal(t, events.TypeNotificationShown, published.Type)
				assert.Equal(t, "visitor-1", published.VisitorID)
				assert.Equal(t, tt.wantNotice.Title, published.Payload["title"])
			}
		})
	}
}

func TestLocationDetector_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geo := NewMockGeoSource(ctrl)
	geo.EXPECT().Lookup(gomock.Any(), "").Return(&models.GeoLocation{CountryCode: "SG", CountryName: "Singapore"}, nil)

	det := NewLocationDetector(geo, nil).Detect(context.Background(), "v", "")
	assert.Equal(t, models.SGD, det.Currency)
	require.NotNil(t, det.Notice)
	assert.Equal(t, "Prices shown in Singapore Dollar (S$)", det.Notice.Body)
}
