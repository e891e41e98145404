// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

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

func TestAPI_ListMembers(t *testing.T) {
	tests := []struct {
		name string

		userID     string
		setupMocks func(*MockServiceInterface)

		wantStatus int
	}{
		{
			name:   "admin lists members",
			userID: "user-123",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListMembers(gomock.Any(), "local-99", "user-123").Return([]*types.Member{
					{ID: "member-1", UnionID: "union-1", FirstName: "Rosa", LastName: "Diaz"},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "non-admin is denied",
			userID: "user-456",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListMembers(gomock.Any(), "local-99", "user-456").Return(nil, ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "unknown slug",
			userID: "user-123",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListMembers(gomock.Any(), "local-99", "user-123").Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unauthenticated",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newTestAPI(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v0/unions/local-99/members", nil)
			if tt.userID != "" {
				req = asUser(req, tt.userID)
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_CreateMember(t *testing.T) {
	t.Run("created with parsed join date", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().
			CreateMember(gomock.Any(), "local-99", "user-123", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, m *types.Member) (*types.Member, error) {
				if m.DateJoined == nil || m.DateJoined.Format(dateLayout) != "2024-01-15" {
					t.Errorf("expected date_joined 2024-01-15, got %v", m.DateJoined)
				}
				m.ID = "member-1"
				return m, nil
			})

		body := `{"first_name": "Rosa", "last_name": "Diaz", "email": "rosa@example.com", "date_joined": "2024-01-15"}`
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/v0/unions/local-99/members", strings.NewReader(body)), "user-123")
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d (%s)", rr.Code, rr.Body.String())
		}
	})

	t.Run("empty first_name is rejected before the service", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		body := `{"first_name": "", "last_name": "Diaz"}`
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/v0/unions/local-99/members", strings.NewReader(body)), "user-123")
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d (%s)", rr.Code, rr.Body.String())
		}

		var response struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !strings.Contains(response.Message, "FirstName") {
			t.Errorf("expected message naming the failing field, got %q", response.Message)
		}
	})

	t.Run("invalid email is a field-level failure", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		body := `{"first_name": "Rosa", "last_name": "Diaz", "email": "not-an-email"}`
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/v0/unions/local-99/members", strings.NewReader(body)), "user-123")
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}

		var response struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !strings.Contains(response.Message, "Email") {
			t.Errorf("expected message naming the failing field, got %q", response.Message)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		body := `{"first_name": "Rosa", "last_name": "Diaz", "status": "expelled"}`
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/v0/unions/local-99/members", strings.NewReader(body)), "user-123")
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}
	})
}

func TestAPI_GetMember(t *testing.T) {
	mux, mockService := newTestAPI(t)

	mockService.EXPECT().
		GetMember(gomock.Any(), "local-99", "user-123", "member-1").
		Return(&types.Member{ID: "member-1", UnionID: "union-1", FirstName: "Rosa", LastName: "Diaz"}, nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v0/unions/local-99/members/member-1", nil), "user-123")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var response struct {
		Data types.Member `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.ID != "member-1" {
		t.Errorf("expected member-1, got %q", response.Data.ID)
	}
}

func TestAPI_UpdateMember(t *testing.T) {
	mux, mockService := newTestAPI(t)

	mockService.EXPECT().
		UpdateMember(gomock.Any(), "local-99", "user-123", gomock.Any()).
		DoAndReturn(func(_ any, _, _ string, m *types.Member) (*types.Member, error) {
			if m.ID != "member-1" {
				t.Errorf("expected member-1 from URL, got %q", m.ID)
			}
			if m.Status != types.MemberStatusInactive {
				t.Errorf("expected status inactive, got %q", m.Status)
			}
			return m, nil
		})

	body := `{"first_name": "Rosa", "last_name": "Diaz", "status": "inactive"}`
	req := asUser(httptest.NewRequest(http.MethodPut, "/api/v0/unions/local-99/members/member-1", strings.NewReader(body)), "user-123")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rr.Code, rr.Body.String())
	}
}
