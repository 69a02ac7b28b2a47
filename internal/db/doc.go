// Package db contains the data-access layer for the SoftWear core.
//
// It abstracts the underlying database (SQLite, PostgreSQL, MySQL) behind the
// Store interface so the rest of the application talks to a uniform,
// context-aware contract. The centralized Bun-based implementation lives in
// bun_adapter.go; the per-dialect stores are thin wrappers around it.
//
// Testing notes
//   - Prefer `db.InitDB("sqlite", ":memory:")` in tests that need real DB
//     semantics and migrations.
//   - For fast unit tests that don't need a DB, inject a fake that satisfies
//     the narrow consumer-side interfaces (auth.CredentialStore,
//     audit.Store).
package db
