// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// Package audit provides the append-only history log: a Recorder that writes
// one immutable entry per significant action and a Browser that serves
// filtered, paginated views of the log for history screens and reports.
package audit

import (
	"context"
	"time"

	"github.com/JustTzyy/softwear/internal/model"
)

// Store is the slice of the database contract the audit package needs.
// *db.SqliteStore and friends satisfy it; tests inject fakes.
type Store interface {
	AppendAuditEntry(ctx context.Context, entry model.AuditLogEntry) (int64, error)
	ListAuditEntries(ctx context.Context, filter model.AuditLogFilter) ([]model.AuditLogEntry, error)
	CountAuditEntries(ctx context.Context, filter model.AuditLogFilter) (int, error)
	ListAuditStatuses(ctx context.Context, actorID *int64) ([]string, error)
	ListAuditModules(ctx context.Context, actorID *int64) ([]string, error)
}

// Clock provides an abstraction over time.Now for testability.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
