// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/unionsimple/union-service/internal/db"
	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const (
	unionColumns  = "id, name, slug, description, created_by, created_at, updated_at"
	memberColumns = "id, union_id, first_name, last_name, email, phone, member_number, status, date_joined, created_at, updated_at"
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func isNoRows(err error) bool {
	// The squirrel runner goes through database/sql, but keep the pgx
	// sentinel check as well for direct pool usage.
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func (s *Storage) CreateUnion(ctx context.Context, u *types.Union) (*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUnion")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate union ID: %w", err)
	}

	var created types.Union
	err = s.db.Statement(ctx).
		Insert("unions").
		Columns("id", "name", "slug", "description", "created_by").
		Values(id.String(), u.Name, u.Slug, u.Description, u.CreatedBy).
		Suffix("RETURNING " + unionColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Slug, &created.Description, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "union slug already taken")
		}
		return nil, fmt.Errorf("failed to insert union: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetUnionByID(ctx context.Context, id string) (*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUnionByID")
	defer span.End()

	return s.getUnion(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUnionBySlug(ctx context.Context, slug string) (*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUnionBySlug")
	defer span.End()

	return s.getUnion(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getUnion(ctx context.Context, where sq.Eq) (*types.Union, error) {
	var u types.Union
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "description", "created_by", "created_at", "updated_at").
		From("unions").
		Where(where).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Name, &u.Slug, &u.Description, &u.CreatedBy, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get union: %w", err)
	}

	return &u, nil
}

func (s *Storage) UnionSlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UnionSlugExists")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("unions").
		Where(sq.Eq{"slug": slug}).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

func (s *Storage) ListUnionsByCreator(ctx context.Context, userID string) ([]*types.Union, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnionsByCreator")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "slug", "description", "created_by", "created_at", "updated_at").
		From("unions").
		Where(sq.Eq{"created_by": userID}).
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unions: %w", err)
	}
	defer rows.Close()

	var unions []*types.Union
	for rows.Next() {
		var u types.Union
		if err := rows.Scan(&u.ID, &u.Name, &u.Slug, &u.Description, &u.CreatedBy, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan union: %w", err)
		}
		unions = append(unions, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return unions, nil
}

// UpdateUnion updates the fields named in paths following PATCH semantics.
// The slug is immutable and never part of an update; updated_at is always
// refreshed when at least one field changes.
func (s *Storage) UpdateUnion(ctx context.Context, u *types.Union, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUnion")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = u.Name
		case "description":
			updateMap["description"] = u.Description
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("unions").
		SetMap(updateMap).
		Where(sq.Eq{"id": u.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update union: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateMember(ctx context.Context, m *types.Member) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	status := m.Status
	if status == "" {
		status = types.MemberStatusActive
	}

	var created types.Member
	err = s.db.Statement(ctx).
		Insert("members").
		Columns("id", "union_id", "first_name", "last_name", "email", "phone", "member_number", "status", "date_joined").
		Values(id.String(), m.UnionID, m.FirstName, m.LastName, m.Email, m.Phone, m.MemberNumber, status, m.DateJoined).
		Suffix("RETURNING " + memberColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.UnionID, &created.FirstName, &created.LastName, &created.Email, &created.Phone,
			&created.MemberNumber, &created.Status, &created.DateJoined, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}

	return &created, nil
}

// GetMember fetches a member scoped to its union; a member id from another
// union resolves to ErrNotFound rather than leaking across tenants.
func (s *Storage) GetMember(ctx context.Context, id, unionID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMember")
	defer span.End()

	var m types.Member
	err := s.db.Statement(ctx).
		Select("id", "union_id", "first_name", "last_name", "email", "phone", "member_number", "status", "date_joined", "created_at", "updated_at").
		From("members").
		Where(sq.Eq{"id": id, "union_id": unionID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UnionID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
			&m.MemberNumber, &m.Status, &m.DateJoined, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByUnionID(ctx context.Context, unionID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByUnionID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "union_id", "first_name", "last_name", "email", "phone", "member_number", "status", "date_joined", "created_at", "updated_at").
		From("members").
		Where(sq.Eq{"union_id": unionID}).
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.ID, &m.UnionID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
			&m.MemberNumber, &m.Status, &m.DateJoined, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// UpdateMember updates a member scoped by (id, union_id) and refreshes
// updated_at. ErrNotFound when no row matches the scope.
func (s *Storage) UpdateMember(ctx context.Context, m *types.Member) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMember")
	defer span.End()

	status := m.Status
	if status == "" {
		status = types.MemberStatusActive
	}

	var updated types.Member
	err := s.db.Statement(ctx).
		Update("members").
		Set("first_name", m.FirstName).
		Set("last_name", m.LastName).
		Set("email", m.Email).
		Set("phone", m.Phone).
		Set("member_number", m.MemberNumber).
		Set("status", status).
		Set("date_joined", m.DateJoined).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": m.ID, "union_id": m.UnionID}).
		Suffix("RETURNING " + memberColumns).
		QueryRowContext(ctx).
		Scan(&updated.ID, &updated.UnionID, &updated.FirstName, &updated.LastName, &updated.Email, &updated.Phone,
			&updated.MemberNumber, &updated.Status, &updated.DateJoined, &updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return &updated, nil
}
