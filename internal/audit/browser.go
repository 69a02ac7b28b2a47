// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import (
	"context"

	"github.com/JustTzyy/softwear/internal/model"
)

// Pagination bounds enforced by the Browser. Out-of-range inputs are clamped
// rather than rejected so history screens degrade gracefully.
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Browser serves read-only, filtered views of the audit log. Every call
// re-executes against the store; nothing is cached.
type Browser struct {
	store Store
}

// NewBrowser returns a Browser reading through the given store.
func NewBrowser(store Store) *Browser {
	return &Browser{store: store}
}

// clampFilter normalizes pagination inputs before the offset arithmetic:
// page below 1 becomes 1, page size outside [1, MaxPageSize] becomes
// DefaultPageSize or MaxPageSize respectively.
func clampFilter(f model.AuditLogFilter) model.AuditLogFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

// Query returns one page of entries matching the filter, newest first, along
// with the total number of matching rows across all pages. The count is built
// from the same criteria independently of the paginated listing.
func (b *Browser) Query(ctx context.Context, f model.AuditLogFilter) ([]model.AuditLogEntry, int, error) {
	f = clampFilter(f)

	entries, err := b.store.ListAuditEntries(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := b.store.CountAuditEntries(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// Statuses returns the distinct status values present in the log, optionally
// narrowed to one actor, sorted ascending. Used to populate filter choices.
func (b *Browser) Statuses(ctx context.Context, actorID *int64) ([]string, error) {
	return b.store.ListAuditStatuses(ctx, actorID)
}

// Modules returns the distinct module values present in the log, optionally
// narrowed to one actor, sorted ascending.
func (b *Browser) Modules(ctx context.Context, actorID *int64) ([]string, error) {
	return b.store.ListAuditModules(ctx, actorID)
}
