// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package union

import (
	"context"

	"github.com/unionsimple/union-service/internal/types"
)

type ServiceInterface interface {
	CreateUnion(ctx context.Context, name string, description *string, userID string) (*types.Union, error)
	GetUnionBySlug(ctx context.Context, slug, userID string) (*types.Union, error)
	ListUnionsByCreator(ctx context.Context, userID string) ([]*types.Union, error)
	UpdateUnion(ctx context.Context, slug, userID string, u *types.Union, paths []string) (*types.Union, error)
}

type StorageInterface interface {
	CreateUnion(ctx context.Context, u *types.Union) (*types.Union, error)
	GetUnionByID(ctx context.Context, id string) (*types.Union, error)
	GetUnionBySlug(ctx context.Context, slug string) (*types.Union, error)
	ListUnionsByCreator(ctx context.Context, userID string) ([]*types.Union, error)
	UpdateUnion(ctx context.Context, u *types.Union, paths []string) error
}

type AllocatorInterface interface {
	// Allocate returns a slug candidate that was unused at check time.
	Allocate(ctx context.Context, name string) (string, error)
	// Timestamped returns the terminal fallback slug for the given base.
	Timestamped(base string) string
}

type GuardInterface interface {
	IsUnionAdmin(ctx context.Context, userID, unionID string) (bool, error)
}

type TxRunnerInterface interface {
	// WithTx runs fn inside its own transaction, committed when fn
	// returns nil and rolled back otherwise.
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
