// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for the SoftWear core.
// This file contains the SQLite implementation of the database store.
package db // import "github.com/JustTzyy/softwear/internal/db"

import (
	"context"

	"github.com/JustTzyy/softwear/internal/model"
	"github.com/uptrace/bun"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SqliteStore is the SQLite implementation of the Store interface.
type SqliteStore struct {
	bun *bun.DB
}

// GetCredentialByEmail retrieves one active, non-archived credential record.
func (s *SqliteStore) GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error) {
	return GetCredentialByEmailBun(ctx, s.bun, email)
}

// AppendAuditEntry records one immutable audit trail entry.
func (s *SqliteStore) AppendAuditEntry(ctx context.Context, entry model.AuditLogEntry) (int64, error) {
	return AppendAuditEntryBun(ctx, s.bun, entry)
}

// ListAuditEntries returns one page of filtered audit entries, newest first.
func (s *SqliteStore) ListAuditEntries(ctx context.Context, filter model.AuditLogFilter) ([]model.AuditLogEntry, error) {
	return ListAuditEntriesBun(ctx, s.bun, filter)
}

// CountAuditEntries returns the total number of entries matching the filter.
func (s *SqliteStore) CountAuditEntries(ctx context.Context, filter model.AuditLogFilter) (int, error) {
	return CountAuditEntriesBun(ctx, s.bun, filter)
}

// ListAuditStatuses returns the distinct status facets of the audit log.
func (s *SqliteStore) ListAuditStatuses(ctx context.Context, actorID *int64) ([]string, error) {
	return ListAuditFacetBun(ctx, s.bun, "status", actorID)
}

// ListAuditModules returns the distinct module facets of the audit log.
func (s *SqliteStore) ListAuditModules(ctx context.Context, actorID *int64) ([]string, error) {
	return ListAuditFacetBun(ctx, s.bun, "module", actorID)
}
