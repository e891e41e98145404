// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name string

		authorizationHeader string
		verifierCalled      bool
		verifierUserID      string
		verifierErr         error

		wantStatus int
		wantUserID string
	}{
		{
			name:       "missing authorization header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:                "non bearer authorization header",
			authorizationHeader: "Basic dXNlcjpwYXNz",
			wantStatus:          http.StatusUnauthorized,
		},
		{
			name:                "verification failure",
			authorizationHeader: "Bearer not-a-real-token",
			verifierCalled:      true,
			verifierErr:         errors.New("token signature invalid"),
			wantStatus:          http.StatusUnauthorized,
		},
		{
			name:                "valid token",
			authorizationHeader: "Bearer good-token",
			verifierCalled:      true,
			verifierUserID:      "user-123",
			wantStatus:          http.StatusOK,
			wantUserID:          "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			if tt.verifierCalled {
				mockVerifier.EXPECT().
					VerifyToken(gomock.Any(), gomock.Any()).
					Return(tt.verifierUserID, tt.verifierErr)
			}

			middleware := NewMiddleware(
				mockVerifier,
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor("test"),
				logging.NewNoopLogger(),
			)

			var gotUserID string
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/unions", nil)
			if tt.authorizationHeader != "" {
				req.Header.Set("Authorization", tt.authorizationHeader)
			}

			rr := httptest.NewRecorder()
			middleware.Authenticate()(next).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}

			if tt.wantStatus == http.StatusOK {
				if !nextCalled {
					t.Fatal("expected next handler to be called")
				}
				if gotUserID != tt.wantUserID {
					t.Fatalf("expected user ID %q in context, got %q", tt.wantUserID, gotUserID)
				}
				return
			}

			if nextCalled {
				t.Fatal("expected next handler not to be called")
			}

			response := make(map[string]interface{})
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if int(response["status"].(float64)) != http.StatusUnauthorized {
				t.Fatalf("expected status field %d, got %v", http.StatusUnauthorized, response["status"])
			}
		})
	}
}
