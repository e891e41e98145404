// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Union is the tenant of the system. The principal that created it is its
// sole admin; slug is unique and never changes after creation.
type Union struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Member statuses. Active is the default on creation.
const (
	MemberStatusActive   = "active"
	MemberStatusPending  = "pending"
	MemberStatusInactive = "inactive"
)

// Member is a roster entry belonging to exactly one Union.
type Member struct {
	ID           string     `db:"id" json:"id"`
	UnionID      string     `db:"union_id" json:"union_id"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Email        *string    `db:"email" json:"email"`
	Phone        *string    `db:"phone" json:"phone"`
	MemberNumber *string    `db:"member_number" json:"member_number"`
	Status       string     `db:"status" json:"status"`
	DateJoined   *time.Time `db:"date_joined" json:"date_joined"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
