// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/storage"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/internal/types"
)

const adminPolicy = "union_admin"

var _ GuardInterface = (*Guard)(nil)

// Guard decides whether a principal administers a union. The admin relation
// is the union's created_by field; there is no role model. The predicate is
// evaluated against stored state on every call and must not be cached across
// requests.
type Guard struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGuard(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	return &Guard{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// IsAdminOf is the pure form of the admin check for callers that already
// hold the union record.
func IsAdminOf(u *types.Union, userID string) bool {
	if u == nil || userID == "" {
		return false
	}
	return u.CreatedBy == userID
}

// IsUnionAdmin reports whether userID created the union. It fails closed:
// an absent union or a failing lookup both deny access, and the lookup error
// is propagated so callers can tell denial from backend trouble.
func (g *Guard) IsUnionAdmin(ctx context.Context, userID, unionID string) (bool, error) {
	ctx, span := g.tracer.Start(ctx, "authorization.Guard.IsUnionAdmin")
	defer span.End()

	if userID == "" {
		return false, nil
	}

	u, err := g.storage.GetUnionByID(ctx, unionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if !IsAdminOf(u, userID) {
		g.logger.Security().AuthzFailure(userID, adminPolicy)
		return false, nil
	}

	return true, nil
}
