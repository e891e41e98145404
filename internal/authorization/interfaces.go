// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/unionsimple/union-service/internal/types"
)

type GuardInterface interface {
	IsUnionAdmin(ctx context.Context, userID, unionID string) (bool, error)
}

type StorageInterface interface {
	GetUnionByID(ctx context.Context, id string) (*types.Union, error)
}
