// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/storage"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockGuardInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockGuard := NewMockGuardInterface(ctrl)

	s := NewService(
		mockStorage,
		mockGuard,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)

	return s, mockStorage, mockGuard
}

func TestService_ListMembers(t *testing.T) {
	u := &types.Union{ID: "union-1", Slug: "local-99", CreatedBy: "user-123"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		userID      string
		setupMocks  func(*MockStorageInterface, *MockGuardInterface)
		expectedLen int
		expectedErr error
	}{
		{
			name:   "admin lists members",
			userID: "user-123",
			setupMocks: func(mockStorage *MockStorageInterface, mockGuard *MockGuardInterface) {
				mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
				mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-123", "union-1").Return(true, nil)
				mockStorage.EXPECT().ListMembersByUnionID(gomock.Any(), "union-1").Return([]*types.Member{
					{ID: "member-1", UnionID: "union-1", FirstName: "Rosa", LastName: "Diaz"},
					{ID: "member-2", UnionID: "union-1", FirstName: "Terry", LastName: "Jeffords"},
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name:   "other creator's principal is denied",
			userID: "user-456",
			setupMocks: func(mockStorage *MockStorageInterface, mockGuard *MockGuardInterface) {
				mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
				mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-456", "union-1").Return(false, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "unknown slug",
			userID: "user-123",
			setupMocks: func(mockStorage *MockStorageInterface, mockGuard *MockGuardInterface) {
				mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:   "guard failure denies instead of defaulting open",
			userID: "user-123",
			setupMocks: func(mockStorage *MockStorageInterface, mockGuard *MockGuardInterface) {
				mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
				mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-123", "union-1").Return(false, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockGuard := newTestService(t)
			tc.setupMocks(mockStorage, mockGuard)

			members, err := s.ListMembers(context.Background(), "local-99", tc.userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(members) != tc.expectedLen {
				t.Errorf("expected %d members, got %d", tc.expectedLen, len(members))
			}
		})
	}
}

func TestService_CreateMember(t *testing.T) {
	u := &types.Union{ID: "union-1", Slug: "local-99", CreatedBy: "user-123"}

	t.Run("admin creates member scoped to the union", func(t *testing.T) {
		s, mockStorage, mockGuard := newTestService(t)

		mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
		mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-123", "union-1").Return(true, nil)
		mockStorage.EXPECT().CreateMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *types.Member) (*types.Member, error) {
				if m.UnionID != "union-1" {
					t.Errorf("expected member scoped to union-1, got %q", m.UnionID)
				}
				m.ID = "member-1"
				return m, nil
			})

		created, err := s.CreateMember(context.Background(), "local-99", "user-123", &types.Member{FirstName: "Rosa", LastName: "Diaz"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "member-1" {
			t.Errorf("expected member-1, got %q", created.ID)
		}
	})

	t.Run("writes enforce the same guard as reads", func(t *testing.T) {
		s, mockStorage, mockGuard := newTestService(t)

		mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
		mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-456", "union-1").Return(false, nil)

		if _, err := s.CreateMember(context.Background(), "local-99", "user-456", &types.Member{FirstName: "Rosa", LastName: "Diaz"}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestService_GetMember(t *testing.T) {
	u := &types.Union{ID: "union-1", Slug: "local-99", CreatedBy: "user-123"}

	t.Run("lookup is scoped by union", func(t *testing.T) {
		s, mockStorage, mockGuard := newTestService(t)

		mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
		mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-123", "union-1").Return(true, nil)
		mockStorage.EXPECT().GetMember(gomock.Any(), "member-1", "union-1").
			Return(&types.Member{ID: "member-1", UnionID: "union-1"}, nil)

		m, err := s.GetMember(context.Background(), "local-99", "user-123", "member-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != "member-1" {
			t.Errorf("expected member-1, got %q", m.ID)
		}
	})

	t.Run("member of another union is not found", func(t *testing.T) {
		s, mockStorage, mockGuard := newTestService(t)

		mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
		mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-123", "union-1").Return(true, nil)
		mockStorage.EXPECT().GetMember(gomock.Any(), "member-9", "union-1").Return(nil, storage.ErrNotFound)

		if _, err := s.GetMember(context.Background(), "local-99", "user-123", "member-9"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestService_UpdateMember(t *testing.T) {
	u := &types.Union{ID: "union-1", Slug: "local-99", CreatedBy: "user-123"}

	s, mockStorage, mockGuard := newTestService(t)

	mockStorage.EXPECT().GetUnionBySlug(gomock.Any(), "local-99").Return(u, nil)
	mockGuard.EXPECT().IsUnionAdmin(gomock.Any(), "user-123", "union-1").Return(true, nil)
	mockStorage.EXPECT().UpdateMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *types.Member) (*types.Member, error) {
			if m.UnionID != "union-1" {
				t.Errorf("expected update scoped to union-1, got %q", m.UnionID)
			}
			return m, nil
		})

	updated, err := s.UpdateMember(context.Background(), "local-99", "user-123", &types.Member{ID: "member-1", FirstName: "Rosa", LastName: "Diaz", Status: types.MemberStatusInactive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != types.MemberStatusInactive {
		t.Errorf("expected status %q, got %q", types.MemberStatusInactive, updated.Status)
	}
}
