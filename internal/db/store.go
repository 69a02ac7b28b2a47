// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/JustTzyy/softwear/internal/model"
)

// Store defines the interface for all database operations in the SoftWear
// core. This allows for multiple database backends to be implemented. Every
// method takes a context so in-flight queries can be cancelled; each call
// acquires its own pooled connection and releases it on every exit path.
type Store interface {
	// Credential methods
	GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error)

	// Audit log methods
	AppendAuditEntry(ctx context.Context, entry model.AuditLogEntry) (int64, error)
	ListAuditEntries(ctx context.Context, filter model.AuditLogFilter) ([]model.AuditLogEntry, error)
	CountAuditEntries(ctx context.Context, filter model.AuditLogFilter) (int, error)
	ListAuditStatuses(ctx context.Context, actorID *int64) ([]string, error)
	ListAuditModules(ctx context.Context, actorID *int64) ([]string, error)
}
