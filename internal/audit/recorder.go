// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import (
	"context"
	"time"

	"github.com/JustTzyy/softwear/internal/model"
)

// Recorder appends audit entries. Business code treats it as fire-and-forget,
// but the append itself is synchronous and reports failure to the caller; a
// dropped entry for a completed action is a compliance gap, so errors are
// never swallowed here. Retry policy, if any, belongs to the caller.
type Recorder struct {
	store Store
	clock Clock
}

// NewRecorder returns a Recorder writing through the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, clock: systemClock{}}
}

// WithClock replaces the recorder's clock. Tests may set a fake clock.
func (r *Recorder) WithClock(c Clock) *Recorder {
	r.clock = c
	return r
}

// Log appends one entry stamped with the current UTC time. The timestamp is
// captured here on the writer side, not left to the store's own default, so
// caller-observed ordering matches commit ordering.
func (r *Recorder) Log(ctx context.Context, actorID int64, status, module, description string) error {
	return r.LogAt(ctx, actorID, status, module, description, r.clock.Now().UTC())
}

// LogAt appends one entry with an explicit timestamp.
func (r *Recorder) LogAt(ctx context.Context, actorID int64, status, module, description string, ts time.Time) error {
	_, err := r.store.AppendAuditEntry(ctx, model.AuditLogEntry{
		ActorID:     actorID,
		Status:      status,
		Module:      module,
		Description: description,
		Timestamp:   ts,
	})
	return err
}
