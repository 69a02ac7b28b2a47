// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the shared Bun query implementations backing every
// dialect-specific store.
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/JustTzyy/softwear/internal/model"
	"github.com/uptrace/bun"
)

// UserModel maps the `users` table for Bun queries.
type UserModel struct {
	bun.BaseModel `bun:"table:users"`
	ID            int64          `bun:"id,pk,autoincrement"`
	Email         string         `bun:"email"`
	PasswordHash  string         `bun:"password_hash"`
	Name          sql.NullString `bun:"name"`
	FirstName     sql.NullString `bun:"first_name"`
	LastName      sql.NullString `bun:"last_name"`
	RoleID        int64          `bun:"role_id"`
	IsActive      bool           `bun:"is_active"`
	ArchivedAt    sql.NullTime   `bun:"archived_at"`
}

// RoleModel maps the `roles` table.
type RoleModel struct {
	bun.BaseModel `bun:"table:roles"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Name          string `bun:"name"`
}

// AuditLogModel maps the `audit_logs` table.
type AuditLogModel struct {
	bun.BaseModel `bun:"table:audit_logs"`
	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id"`
	Status        string    `bun:"status"`
	Module        string    `bun:"module"`
	Description   string    `bun:"description"`
	Timestamp     time.Time `bun:"timestamp"`
}

// credentialRow carries the columns of the user/role join needed for
// authentication. Display-name resolution happens in Go to stay portable
// across engines (MySQL has no || concatenation operator).
type credentialRow struct {
	ID           int64          `bun:"id"`
	Email        string         `bun:"email"`
	PasswordHash string         `bun:"password_hash"`
	Name         sql.NullString `bun:"name"`
	FirstName    sql.NullString `bun:"first_name"`
	LastName     sql.NullString `bun:"last_name"`
	RoleName     string         `bun:"role_name"`
}

// auditRow is an AuditLogModel joined with the actor's identity columns.
type auditRow struct {
	ID          int64          `bun:"id"`
	UserID      int64          `bun:"user_id"`
	Status      string         `bun:"status"`
	Module      string         `bun:"module"`
	Description string         `bun:"description"`
	Timestamp   time.Time      `bun:"timestamp"`
	ActorName   sql.NullString `bun:"actor_name"`
	ActorFirst  sql.NullString `bun:"actor_first"`
	ActorLast   sql.NullString `bun:"actor_last"`
	ActorRole   string         `bun:"actor_role"`
}

// resolveDisplayName applies the shared resolution rule: the explicit name
// when present and non-empty, else the trimmed first+last concatenation.
func resolveDisplayName(name, first, last sql.NullString) string {
	if name.Valid && strings.TrimSpace(name.String) != "" {
		return name.String
	}
	full := strings.TrimSpace(strings.TrimSpace(first.String) + " " + strings.TrimSpace(last.String))
	return full
}

func credentialRowToModel(r credentialRow) model.Credential {
	return model.Credential{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.RoleName,
		DisplayName:  resolveDisplayName(r.Name, r.FirstName, r.LastName),
	}
}

func auditRowToModel(r auditRow) model.AuditLogEntry {
	return model.AuditLogEntry{
		ID:          r.ID,
		ActorID:     r.UserID,
		Status:      r.Status,
		Module:      r.Module,
		Description: r.Description,
		Timestamp:   r.Timestamp,
		ActorName:   resolveDisplayName(r.ActorName, r.ActorFirst, r.ActorLast),
		ActorRole:   r.ActorRole,
	}
}

// GetCredentialByEmailBun fetches at most one active, non-archived credential
// record by email, joined to its role name. Returns (nil, nil) when no row
// matches; the email is matched exactly, leaving case handling to the store
// collation.
func GetCredentialByEmailBun(ctx context.Context, bdb *bun.DB, email string) (*model.Credential, error) {
	var row credentialRow
	err := bdb.NewSelect().
		TableExpr("users AS u").
		ColumnExpr("u.id, u.email, u.password_hash, u.name, u.first_name, u.last_name").
		ColumnExpr("r.name AS role_name").
		Join("JOIN roles r ON r.id = u.role_id").
		Where("u.email = ?", email).
		Where("u.is_active = ?", true).
		Where("u.archived_at IS NULL").
		Limit(1).
		Scan(ctx, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c := credentialRowToModel(row)
	return &c, nil
}

// AppendAuditEntryBun inserts one immutable audit row and returns its id.
func AppendAuditEntryBun(ctx context.Context, bdb *bun.DB, entry model.AuditLogEntry) (int64, error) {
	am := &AuditLogModel{
		UserID:      entry.ActorID,
		Status:      entry.Status,
		Module:      entry.Module,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
	if _, err := bdb.NewInsert().Model(am).
		Column("user_id", "status", "module", "description", "timestamp").
		Returning("id").
		Exec(ctx); err != nil {
		return 0, MapDBError(err)
	}
	return am.ID, nil
}

// applyAuditFilter ANDs in each optional criterion of the filter when present.
// The same clause set backs both the paginated listing and the total count so
// the two can never drift apart.
func applyAuditFilter(q *bun.SelectQuery, f model.AuditLogFilter) *bun.SelectQuery {
	if f.ActorID != nil {
		q = q.Where("a.user_id = ?", *f.ActorID)
	}
	if f.HasSearch() {
		like := "%" + strings.ToLower(strings.TrimSpace(f.Search)) + "%"
		q = q.Where("(LOWER(a.description) LIKE ? OR LOWER(a.status) LIKE ? OR LOWER(a.module) LIKE ?)", like, like, like)
	}
	if f.Status != "" {
		q = q.Where("a.status = ?", f.Status)
	}
	if f.Module != "" {
		q = q.Where("a.module = ?", f.Module)
	}
	// Date-only granularity: truncate the bounds to midnight and compare
	// half-open so a To of day D includes everything timestamped within D.
	if f.From != nil {
		q = q.Where("a.timestamp >= ?", truncateToDay(*f.From))
	}
	if f.To != nil {
		q = q.Where("a.timestamp < ?", truncateToDay(*f.To).AddDate(0, 0, 1))
	}
	return q
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// auditJoinQuery builds the base audit listing query: audit rows inner-joined
// to the actor's user and role records. Entries whose actor row was deleted
// drop out of the result on purpose.
func auditJoinQuery(bdb *bun.DB) *bun.SelectQuery {
	return bdb.NewSelect().
		TableExpr("audit_logs AS a").
		ColumnExpr("a.id, a.user_id, a.status, a.module, a.description, a.timestamp").
		ColumnExpr("u.name AS actor_name, u.first_name AS actor_first, u.last_name AS actor_last").
		ColumnExpr("r.name AS actor_role").
		Join("JOIN users u ON u.id = a.user_id").
		Join("JOIN roles r ON r.id = u.role_id")
}

// ListAuditEntriesBun returns one page of audit entries matching the filter,
// newest first. Pagination inputs are assumed pre-clamped by the caller.
func ListAuditEntriesBun(ctx context.Context, bdb *bun.DB, f model.AuditLogFilter) ([]model.AuditLogEntry, error) {
	var rows []auditRow
	q := applyAuditFilter(auditJoinQuery(bdb), f).
		OrderExpr("a.timestamp DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize)
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]model.AuditLogEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, auditRowToModel(r))
	}
	return out, nil
}

// CountAuditEntriesBun returns the total number of rows matching the filter,
// ignoring pagination. The predicate set is built independently from the
// listing query.
func CountAuditEntriesBun(ctx context.Context, bdb *bun.DB, f model.AuditLogFilter) (int, error) {
	q := bdb.NewSelect().
		TableExpr("audit_logs AS a").
		Join("JOIN users u ON u.id = a.user_id").
		Join("JOIN roles r ON r.id = u.role_id")
	return applyAuditFilter(q, f).Count(ctx)
}

// ListAuditFacetBun returns the distinct non-empty values of an audit column
// (status or module), optionally narrowed to one actor, sorted ascending.
// The column name is chosen by this package, never by callers.
func ListAuditFacetBun(ctx context.Context, bdb *bun.DB, column string, actorID *int64) ([]string, error) {
	var values []string
	q := bdb.NewSelect().
		TableExpr("audit_logs AS a").
		ColumnExpr("DISTINCT a."+column).
		Where("a."+column+" IS NOT NULL").
		Where("a."+column+" <> ''").
		OrderExpr("a." + column + " ASC")
	if actorID != nil {
		q = q.Where("a.user_id = ?", *actorID)
	}
	if err := q.Scan(ctx, &values); err != nil {
		return nil, err
	}
	return values, nil
}
