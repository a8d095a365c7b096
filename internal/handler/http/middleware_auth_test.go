// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		header      string
		parseErr    error
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:       "valid token",
			method:     http.MethodPost,
			header:     "Bearer " + testToken,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "lower-case scheme",
			method:     http.MethodDelete,
			header:     "bearer " + testToken,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:        "missing header",
			method:      http.MethodPost,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Not authenticated.",
		},
		{
			name:        "token without scheme",
			method:      http.MethodPost,
			header:      testToken,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Not authenticated.",
		},
		{
			name:        "scheme without token",
			method:      http.MethodPost,
			header:      "Bearer ",
			wantStatus:  http.StatusForbidden,
			wantMessage: "Not authenticated.",
		},
		{
			name:        "expired or invalid token",
			method:      http.MethodPatch,
			header:      "Bearer " + testToken,
			parseErr:    service.ErrTokenIsExpiredOrInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication failed, please check credentials and try again.",
		},
		{
			name:        "unexpected parse failure",
			method:      http.MethodPatch,
			header:      "Bearer " + testToken,
			parseErr:    errors.New("boom"),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication failed, please check credentials and try again.",
		},
		{
			name:       "preflight bypasses the check",
			method:     http.MethodOptions,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseCalls := 0
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
					parseCalls++
					assert.Equal(t, testToken, tokenString)
					if tt.parseErr != nil {
						return models.Token{}, tt.parseErr
					}
					return models.Token{Claims: models.TokenClaims{UserID: testUserID, Email: "a@x.com"}}, nil
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			var gotIdentity models.Identity
			var identityFound, nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotIdentity, identityFound = utils.GetIdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/places", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantMessage != "" {
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMessage, body.Message)
				assert.NotContains(t, rec.Body.String(), "boom")
			}

			if tt.method == http.MethodOptions {
				assert.Zero(t, parseCalls)
				assert.False(t, identityFound)
				return
			}
			if tt.wantNext {
				require.True(t, identityFound)
				assert.Equal(t, models.Identity{UserID: testUserID, Email: "a@x.com"}, gotIdentity)
			}
		})
	}
}
