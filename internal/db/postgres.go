// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for the SoftWear core.
// This file contains the PostgreSQL implementation of the database store.
package db // import "github.com/JustTzyy/softwear/internal/db"

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/JustTzyy/softwear/internal/model"
	"github.com/uptrace/bun"
)

// PostgresStore is the PostgreSQL implementation of the Store interface.
// The Bun helpers in bun_adapter.go are written against portable SQL, so the
// dialect stores stay thin; engine-specific behavior (placeholders, RETURNING)
// is handled by the pgdialect wiring in createBunDB.
type PostgresStore struct {
	bun *bun.DB
}

func (s *PostgresStore) GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error) {
	return GetCredentialByEmailBun(ctx, s.bun, email)
}

func (s *PostgresStore) AppendAuditEntry(ctx context.Context, entry model.AuditLogEntry) (int64, error) {
	return AppendAuditEntryBun(ctx, s.bun, entry)
}

func (s *PostgresStore) ListAuditEntries(ctx context.Context, filter model.AuditLogFilter) ([]model.AuditLogEntry, error) {
	return ListAuditEntriesBun(ctx, s.bun, filter)
}

func (s *PostgresStore) CountAuditEntries(ctx context.Context, filter model.AuditLogFilter) (int, error) {
	return CountAuditEntriesBun(ctx, s.bun, filter)
}

func (s *PostgresStore) ListAuditStatuses(ctx context.Context, actorID *int64) ([]string, error) {
	return ListAuditFacetBun(ctx, s.bun, "status", actorID)
}

func (s *PostgresStore) ListAuditModules(ctx context.Context, actorID *int64) ([]string, error) {
	return ListAuditFacetBun(ctx, s.bun, "module", actorID)
}
