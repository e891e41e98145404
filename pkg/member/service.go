// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/internal/types"
)

// ErrForbidden is returned when the acting principal is not the admin of
// the union whose members are being accessed. Reads and writes are denied
// identically.
var ErrForbidden = errors.New("principal is not the union admin")

type Service struct {
	storage StorageInterface
	guard   GuardInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	guard GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		guard:   guard,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// authorizedUnion resolves the slug and enforces the admin relation. Every
// member operation funnels through here so reads and writes cannot drift
// apart in what they enforce.
func (s *Service) authorizedUnion(ctx context.Context, slug, userID string) (*types.Union, error) {
	u, err := s.storage.GetUnionBySlug(ctx, slug)
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

func (s *Service) ListMembers(ctx context.Context, slug, userID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.ListMembers")
	defer span.End()

	u, err := s.authorizedUnion(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	members, err := s.storage.ListMembersByUnionID(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

func (s *Service) CreateMember(ctx context.Context, slug, userID string, m *types.Member) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.CreateMember")
	defer span.End()

	u, err := s.authorizedUnion(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	m.UnionID = u.ID
	created, err := s.storage.CreateMember(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return created, nil
}

func (s *Service) GetMember(ctx context.Context, slug, userID, memberID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.GetMember")
	defer span.End()

	u, err := s.authorizedUnion(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	// Scoped by union ID so a member of another union 404s instead of leaking.
	m, err := s.storage.GetMember(ctx, memberID, u.ID)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) UpdateMember(ctx context.Context, slug, userID string, m *types.Member) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.UpdateMember")
	defer span.End()

	u, err := s.authorizedUnion(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	m.UnionID = u.ID
	updated, err := s.storage.UpdateMember(ctx, m)
	if err != nil {
		return nil, err
	}

	return updated, nil
}
