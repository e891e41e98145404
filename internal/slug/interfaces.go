// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package slug

import (
	"context"
)

type CheckerInterface interface {
	// UnionSlugExists reports whether a union already owns the slug.
	UnionSlugExists(ctx context.Context, slug string) (bool, error)
}
