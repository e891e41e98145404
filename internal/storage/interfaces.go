// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/unionsimple/union-service/internal/types"
)

type StorageInterface interface {
	CreateUnion(ctx context.Context, u *types.Union) (*types.Union, error)
	GetUnionByID(ctx context.Context, id string) (*types.Union, error)
	GetUnionBySlug(ctx context.Context, slug string) (*types.Union, error)
	UnionSlugExists(ctx context.Context, slug string) (bool, error)
	ListUnionsByCreator(ctx context.Context, userID string) ([]*types.Union, error)
	UpdateUnion(ctx context.Context, u *types.Union, paths []string) error
	CreateMember(ctx context.Context, m *types.Member) (*types.Member, error)
	GetMember(ctx context.Context, id, unionID string) (*types.Member, error)
	ListMembersByUnionID(ctx context.Context, unionID string) ([]*types.Member, error)
	UpdateMember(ctx context.Context, m *types.Member) (*types.Member, error)
}
