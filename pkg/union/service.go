// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package union

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/slug"
	"github.com/unionsimple/union-service/internal/storage"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/internal/types"
)

// ErrForbidden is returned when the acting principal is not the union's
// admin. Authorization is fail-closed, so callers see this for any denial.
var ErrForbidden = errors.New("principal is not the union admin")

// maxInsertAttempts bounds the reallocation loop when concurrent onboarding
// races the same slug. The unique constraint on unions.slug is the authority;
// the pre-insert existence check is an optimization only.
const maxInsertAttempts = 3

type Service struct {
	storage   StorageInterface
	allocator AllocatorInterface
	guard     GuardInterface
	tx        TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	allocator AllocatorInterface,
	guard GuardInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		allocator: allocator,
		guard:     guard,
		tx:        tx,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// CreateUnion allocates a slug for the union name and inserts the record.
// If the insert loses a race on the slug's unique constraint the slug is
// reallocated and the insert retried, ending with a timestamp suffix that is
// unique for all practical purposes.
func (s *Service) CreateUnion(ctx context.Context, name string, description *string, userID string) (*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "union.Service.CreateUnion")
	defer span.End()

	name = strings.TrimSpace(name)

	candidate, err := s.allocator.Allocate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate slug: %w", err)
	}

	for attempt := 1; attempt <= maxInsertAttempts; attempt++ {
		created, err := s.insertUnion(ctx, &types.Union{
			Name:        name,
			Slug:        candidate,
			Description: description,
			CreatedBy:   userID,
		})
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to create union: %w", err)
		}

		s.logger.Debugf("slug %q lost an insert race, reallocating (attempt %d)", candidate, attempt)
		candidate, err = s.allocator.Allocate(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to reallocate slug: %w", err)
		}
	}

	created, err := s.insertUnion(ctx, &types.Union{
		Name:        name,
		Slug:        s.allocator.Timestamped(slug.Normalize(name)),
		Description: description,
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create union: %w", err)
	}

	return created, nil
}

// insertUnion runs a single insert attempt inside its own transaction. A
// uniqueness violation aborts the Postgres transaction the INSERT ran in,
// so the attempt must not share the request-scoped transaction: a shared
// one would reject every later statement, including the retry itself.
func (s *Service) insertUnion(ctx context.Context, u *types.Union) (*types.Union, error) {
	var created *types.Union
	if err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.storage.CreateUnion(txCtx, u)
		return err
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// GetUnionBySlug resolves the slug to its union and enforces the admin
// relation. A missing union surfaces as storage.ErrNotFound, a non-admin
// principal as ErrForbidden.
func (s *Service) GetUnionBySlug(ctx context.Context, slugValue, userID string) (*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "union.Service.GetUnionBySlug")
	defer span.End()

	u, err := s.storage.GetUnionBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	admin, err := s.guard.IsUnionAdmin(ctx, userID, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate admin relation: %w", err)
	}
	if !admin {
		return nil, ErrForbidden
	}

	return u, nil
}

func (s *Service) ListUnionsByCreator(ctx context.Context, userID string) ([]*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "union.Service.ListUnionsByCreator")
	defer span.End()

	unions, err := s.storage.ListUnionsByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unions: %w", err)
	}

	return unions, nil
}

// UpdateUnion applies the fields named in paths to the union behind the
// slug. The slug itself is immutable; renaming a union never reallocates it.
func (s *Service) UpdateUnion(ctx context.Context, slugValue, userID string, u *types.Union, paths []string) (*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "union.Service.UpdateUnion")
	defer span.End()

	current, err := s.storage.GetUnionBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	admin, err := s.guard.IsUnionAdmin(ctx, userID, current.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate admin relation: %w", err)
	}
	if !admin {
		return nil, ErrForbidden
	}

	u.ID = current.ID
	if err := s.storage.UpdateUnion(ctx, u, paths); err != nil {
		return nil, fmt.Errorf("failed to update union: %w", err)
	}

	updated, err := s.storage.GetUnionByID(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated union: %w", err)
	}

	return updated, nil
}
