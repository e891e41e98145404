// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"

	"github.com/unionsimple/union-service/internal/types"
)

type ServiceInterface interface {
	ListMembers(ctx context.Context, slug, userID string) ([]*types.Member, error)
	CreateMember(ctx context.Context, slug, userID string, m *types.Member) (*types.Member, error)
	GetMember(ctx context.Context, slug, userID, memberID string) (*types.Member, error)
	UpdateMember(ctx context.Context, slug, userID string, m *types.Member) (*types.Member, error)
}

type StorageInterface interface {
	GetUnionBySlug(ctx context.Context, slug string) (*types.Union, error)
	CreateMember(ctx context.Context, m *types.Member) (*types.Member, error)
	GetMember(ctx context.Context, id, unionID string) (*types.Member, error)
	ListMembersByUnionID(ctx context.Context, unionID string) ([]*types.Member, error)
	UpdateMember(ctx context.Context, m *types.Member) (*types.Member, error)
}

type GuardInterface interface {
	IsUnionAdmin(ctx context.Context, userID, unionID string) (bool, error)
}
