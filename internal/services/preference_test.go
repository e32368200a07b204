package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUserPreference_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	const key = "visitor:v1:selectedCurrency"

	tests := []struct {
		name      string
		mockSetup func(store *MockKeyValueStore, rates *MockRateChecker)
		wantCode  models.CurrencyCode
		wantOK    bool
	}{
		{
			name: "stored_and_supported",
			mockSetup: func(store *MockKeyValueStore, rates *MockRateChecker) {
				store.EXPECT().Get(ctx, key).Return("GBP", true, nil)
				rates.EXPECT().Supports(models.GBP).Return(true)
			},
			wantCode: models.GBP,
			wantOK:   true,
		},
		{
			name: "stored_but_unsupported",
			mockSetup: func(store *MockKeyValueStore, rates *MockRateChecker) {
				store.EXPECT().Get(ctx, key).Return("JPY", true, nil)
				rates.EXPECT().Supports(models.CurrencyCode("JPY")).Return(false)
			},
		},
		{
			name: "absent",
			mockSetup: func(store *MockKeyValueStore, rates *MockRateChecker) {
				store.EXPECT().Get(ctx, key).Return("", false, nil)
			},
		},
		{
			name: "store_error",
			mockSetup: func(store *MockKeyValueStore, rates *MockRateChecker) {
				store.EXPECT().Get(ctx, key).Return("", false, errors.New("boom"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMockKeyValueStore(ctrl)
			rates := NewMockRateChecker(ctrl)
			tt.mockSetup(store, rates)

			code, ok := NewUserPreference(store, rates).Get(ctx, "v1")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestUserPreference_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := NewMockKeyValueStore(ctrl)

	gomock.InOrder(
		store.EXPECT().Set(ctx, "visitor:v1:selectedCurrency", "USD").Return(nil),
		store.EXPECT().Set(ctx, "visitor:v1:selectedCurrency", "EUR").Return(errors.New("read only")),
	)

	pref := NewUserPreference(store, NewMockRateChecker(ctrl))
	assert.NoError(t, pref.Set(ctx, "v1", models.USD))
	assert.Error(t, pref.Set(ctx, "v1", models.EUR))
}
