// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the plain domain types shared across the SoftWear core.
package model

import (
	"strings"
	"time"
)

// Credential is the read-only view of a user row used for authentication.
// It joins the user record with its role name; DisplayName is resolved
// store-side (explicit name, else first+last).
type Credential struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	DisplayName  string
}

// Identity is the resolved profile of an authenticated caller. It is
// immutable once constructed; Role is always lowercase and DisplayName is
// never empty (it falls back to the email).
type Identity struct {
	ID          int64
	Email       string
	DisplayName string
	Role        string
}

// AuditLogEntry is one immutable record of an action taken by an actor.
// ActorName and ActorRole are denormalized at query time via join and are
// empty on entries being written.
type AuditLogEntry struct {
	ID          int64
	ActorID     int64
	Status      string
	Module      string
	Description string
	Timestamp   time.Time
	ActorName   string
	ActorRole   string
}

// AuditLogFilter is the transient, per-query criteria for listing audit
// entries. Zero values mean "no filter"; From/To compare at date granularity.
type AuditLogFilter struct {
	ActorID  *int64
	Search   string
	Status   string
	Module   string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// HasSearch reports whether the filter carries a non-blank search term.
func (f AuditLogFilter) HasSearch() bool {
	return strings.TrimSpace(f.Search) != ""
}

// AuditExport is the container for a compressed audit log export.
type AuditExport struct {
	ExportedAt time.Time       `json:"exported_at"`
	Total      int             `json:"total"`
	Entries    []AuditLogEntry `json:"entries"`
}
