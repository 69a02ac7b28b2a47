// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for the SoftWear core.
// This file contains the MySQL implementation of the database store.
// The MySQL driver requires a DSN like "user:password@tcp(host:port)/dbname";
// add `?parseTime=true` so DATETIME columns scan into time.Time correctly.
package db // import "github.com/JustTzyy/softwear/internal/db"

import (
	"context"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/JustTzyy/softwear/internal/model"
	"github.com/uptrace/bun"
)

// MySQLStore is the MySQL implementation of the Store interface.
type MySQLStore struct {
	bun *bun.DB
}

func (s *MySQLStore) GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error) {
	return GetCredentialByEmailBun(ctx, s.bun, email)
}

func (s *MySQLStore) AppendAuditEntry(ctx context.Context, entry model.AuditLogEntry) (int64, error) {
	return AppendAuditEntryBun(ctx, s.bun, entry)
}

func (s *MySQLStore) ListAuditEntries(ctx context.Context, filter model.AuditLogFilter) ([]model.AuditLogEntry, error) {
	return ListAuditEntriesBun(ctx, s.bun, filter)
}

func (s *MySQLStore) CountAuditEntries(ctx context.Context, filter model.AuditLogFilter) (int, error) {
	return CountAuditEntriesBun(ctx, s.bun, filter)
}

func (s *MySQLStore) ListAuditStatuses(ctx context.Context, actorID *int64) ([]string, error) {
	return ListAuditFacetBun(ctx, s.bun, "status", actorID)
}

func (s *MySQLStore) ListAuditModules(ctx context.Context, actorID *int64) ([]string, error) {
	return ListAuditFacetBun(ctx, s.bun, "module", actorID)
}
