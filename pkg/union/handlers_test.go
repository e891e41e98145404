// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package union

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/storage"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/internal/types"
	"github.com/unionsimple/union-service/pkg/authentication"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(
		mockService,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	).RegisterEndpoints(mux)

	return mux, mockService
}

func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(authentication.WithUserID(r.Context(), userID))
}

func TestAPI_CreateUnion(t *testing.T) {
	tests := []struct {
		name string

		userID     string
		body       string
		setupMocks func(*MockServiceInterface)

		wantStatus int
	}{
		{
			name:   "created",
			userID: "user-123",
			body:   `{"name": "Ironworkers Local 123"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateUnion(gomock.Any(), "Ironworkers Local 123", gomock.Nil(), "user-123").
					Return(&types.Union{ID: "union-1", Name: "Ironworkers Local 123", Slug: "ironworkers-local-123", CreatedBy: "user-123"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthenticated",
			body:       `{"name": "Ironworkers Local 123"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing name fails validation",
			userID:     "user-123",
			body:       `{"description": "no name"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			// Nothing reaches the service: a blank name must never
			// allocate a slug or write a record.
			name:       "whitespace-only name fails validation",
			userID:     "user-123",
			body:       `{"name": "   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "surrounding whitespace is trimmed",
			userID: "user-123",
			body:   `{"name": "  Ironworkers Local 123  "}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateUnion(gomock.Any(), "Ironworkers Local 123", gomock.Nil(), "user-123").
					Return(&types.Union{ID: "union-1", Name: "Ironworkers Local 123", Slug: "ironworkers-local-123", CreatedBy: "user-123"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			userID:     "user-123",
			body:       `{"name": `,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newTestAPI(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/unions", strings.NewReader(tt.body))
			if tt.userID != "" {
				req = asUser(req, tt.userID)
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.wantStatus, rr.Code, rr.Body.String())
			}

			if tt.wantStatus == http.StatusCreated {
				var response struct {
					Data   types.Union `json:"data"`
					Status int         `json:"status"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if response.Data.Slug != "ironworkers-local-123" {
					t.Errorf("expected allocated slug in response, got %q", response.Data.Slug)
				}
			}
		})
	}
}

func TestAPI_GetUnion(t *testing.T) {
	tests := []struct {
		name string

		userID     string
		serviceErr error

		wantStatus int
	}{
		{name: "admin sees union", userID: "user-123", wantStatus: http.StatusOK},
		{name: "unknown slug", userID: "user-123", serviceErr: storage.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "non-admin is denied", userID: "user-456", serviceErr: ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newTestAPI(t)

			var u *types.Union
			if tt.serviceErr == nil {
				u = &types.Union{ID: "union-1", Name: "Local 99", Slug: "local-99", CreatedBy: "user-123"}
			}
			mockService.EXPECT().GetUnionBySlug(gomock.Any(), "local-99", tt.userID).Return(u, tt.serviceErr)

			req := asUser(httptest.NewRequest(http.MethodGet, "/api/v0/unions/local-99", nil), tt.userID)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_ListUnions(t *testing.T) {
	mux, mockService := newTestAPI(t)
	mockService.EXPECT().ListUnionsByCreator(gomock.Any(), "user-123").Return(nil, nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v0/unions", nil), "user-123")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	// An empty result is an empty list, not null.
	var response struct {
		Data []*types.Union `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data == nil {
		t.Error("expected empty list in response data")
	}
}

func TestAPI_UpdateUnion(t *testing.T) {
	t.Run("renames union", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().
			UpdateUnion(gomock.Any(), "local-99", "user-123", gomock.Any(), []string{"name"}).
			Return(&types.Union{ID: "union-1", Name: "Local 100", Slug: "local-99", CreatedBy: "user-123"}, nil)

		req := asUser(httptest.NewRequest(http.MethodPatch, "/api/v0/unions/local-99", strings.NewReader(`{"name": "Local 100"}`)), "user-123")
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d (%s)", rr.Code, rr.Body.String())
		}
	})

	t.Run("blank rename is rejected", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		req := asUser(httptest.NewRequest(http.MethodPatch, "/api/v0/unions/local-99", strings.NewReader(`{"name": "   "}`)), "user-123")
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		req := asUser(httptest.NewRequest(http.MethodPatch, "/api/v0/unions/local-99", strings.NewReader(`{}`)), "user-123")
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}
	})
}
