package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-display/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestVisitorMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	known := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	tests := []struct {
		name         string
		mockSetup    func(m *MockVisitorTokener)
		wantKnown    bool
		expectCookie bool
	}{
		{
			name: "ValidSession",
			mockSetup: func(m *MockVisitorTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{VisitorID: known}, nil)
			},
			wantKnown: true,
		},
		{
			name: "NoSession",
			mockSetup: func(m *MockVisitorTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrNoSession)
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("newtoken", nil)
				m.EXPECT().SetTokenCookie(gomock.Any(), "newtoken").
					Do(func(w http.ResponseWriter, token string) {
						http.SetCookie(w, &http.Cookie{Name: jwt.CookieName, Value: token})
					})
			},
			expectCookie: true,
		},
		{
			name: "ExpiredSession",
			mockSetup: func(m *MockVisitorTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("oldtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "oldtoken").Return(nil, errors.New("token is expired"))
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("newtoken", nil)
				m.EXPECT().SetTokenCookie(gomock.Any(), "newtoken").
					Do(func(w http.ResponseWriter, token string) {
						http.SetCookie(w, &http.Cookie{Name: jwt.CookieName, Value: token})
					})
			},
			expectCookie: true,
		},
		{
			name: "SigningFailureStillServes",
			mockSetup: func(m *MockVisitorTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrNoSession)
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("no key"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockVisitorTokener(ctrl)
			tt.mockSetup(mockTokener)

			var visitorID string
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				visitorID, _ = VisitorIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := VisitorMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.True(t, nextCalled)
			assert.NotEmpty(t, visitorID)
			if tt.wantKnown {
				assert.Equal(t, known.String(), visitorID)
			} else {
				_, err := uuid.Parse(visitorID)
				assert.NoError(t, err)
				assert.NotEqual(t, known.String(), visitorID)
			}
			assert.Equal(t, tt.expectCookie, rr.Header().Get("Set-Cookie") != "")
		})
	}
}

func TestVisitorIDFromContext(t *testing.T) {
	_, ok := VisitorIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = VisitorIDFromContext(WithVisitorID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := VisitorIDFromContext(WithVisitorID(context.Background(), "v1"))
	assert.True(t, ok)
	assert.Equal(t, "v1", id)
}
