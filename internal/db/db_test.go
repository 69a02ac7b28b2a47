package db

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB initializes the package store against a shared in-memory SQLite
// database and returns its DSN for direct inspection/seeding.
func newTestDB(t *testing.T) string {
	t.Helper()
	dsn := "file:test_" + t.Name() + "?mode=memory&cache=shared"
	if err := InitDB("sqlite", dsn); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return dsn
}

// openRaw opens a plain database/sql handle on the same shared database.
func openRaw(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

// seedRole inserts a role and returns its id.
func seedRole(t *testing.T, sqlDB *sql.DB, name string) int64 {
	t.Helper()
	res, err := sqlDB.Exec("INSERT INTO roles(name) VALUES(?)", name)
	if err != nil {
		t.Fatalf("failed to seed role %s: %v", name, err)
	}
	id, _ := res.LastInsertId()
	return id
}

type seedUser struct {
	email     string
	hash      string
	name      string
	firstName string
	lastName  string
	roleID    int64
	active    bool
	archived  bool
}

func insertUser(t *testing.T, sqlDB *sql.DB, u seedUser) int64 {
	t.Helper()
	var archivedAt any
	if u.archived {
		archivedAt = "2024-06-01 00:00:00"
	}
	res, err := sqlDB.Exec(
		`INSERT INTO users(email, password_hash, name, first_name, last_name, role_id, is_active, archived_at)
		 VALUES(?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), ?, ?, ?)`,
		u.email, u.hash, u.name, u.firstName, u.lastName, u.roleID, u.active, archivedAt)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", u.email, err)
	}
	id, _ := res.LastInsertId()
	return id
}

func TestInitDB_Migrations_Applied(t *testing.T) {
	dsn := newTestDB(t)
	sqlDB := openRaw(t, dsn)

	for _, table := range []string{"roles", "users", "audit_logs", "schema_migrations"} {
		var name string
		err := sqlDB.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s to exist after migrations: %v", table, err)
		}
	}
}

func TestInitDB_MigrationsIdempotent(t *testing.T) {
	dsn := newTestDB(t)
	// A second InitDB against the same database must skip applied versions.
	if err := InitDB("sqlite", dsn); err != nil {
		t.Fatalf("re-running InitDB failed: %v", err)
	}
}

func TestGetCredentialByEmail(t *testing.T) {
	dsn := newTestDB(t)
	sqlDB := openRaw(t, dsn)
	ctx := context.Background()

	adminRole := seedRole(t, sqlDB, "Admin")
	insertUser(t, sqlDB, seedUser{
		email: "ana@softwear.ph", hash: "ABC123", name: "Ana Reyes",
		roleID: adminRole, active: true,
	})

	cred, err := store.GetCredentialByEmail(ctx, "ana@softwear.ph")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred == nil {
		t.Fatal("expected a credential record")
	}
	if cred.Role != "Admin" {
		t.Fatalf("expected joined role name, got %q", cred.Role)
	}
	if cred.DisplayName != "Ana Reyes" {
		t.Fatalf("expected explicit name, got %q", cred.DisplayName)
	}
	if cred.PasswordHash != "ABC123" {
		t.Fatalf("unexpected hash %q", cred.PasswordHash)
	}
}

func TestGetCredentialByEmail_FirstLastFallback(t *testing.T) {
	dsn := newTestDB(t)
	sqlDB := openRaw(t, dsn)
	ctx := context.Background()

	role := seedRole(t, sqlDB, "Cashier")
	insertUser(t, sqlDB, seedUser{
		email: "ben@softwear.ph", hash: "H", firstName: "Ben", lastName: "Cruz",
		roleID: role, active: true,
	})

	cred, err := store.GetCredentialByEmail(ctx, "ben@softwear.ph")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred == nil || cred.DisplayName != "Ben Cruz" {
		t.Fatalf("expected first+last fallback, got %+v", cred)
	}
}

func TestGetCredentialByEmail_CaseInsensitiveCollation(t *testing.T) {
	dsn := newTestDB(t)
	sqlDB := openRaw(t, dsn)
	ctx := context.Background()

	role := seedRole(t, sqlDB, "Admin")
	insertUser(t, sqlDB, seedUser{
		email: "ana@softwear.ph", hash: "H", name: "Ana", roleID: role, active: true,
	})

	cred, err := store.GetCredentialByEmail(ctx, "ANA@SOFTWEAR.PH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred == nil {
		t.Fatal("expected the email column collation to match case-insensitively")
	}
}

func TestGetCredentialByEmail_ExcludesInactiveAndArchived(t *testing.T) {
	dsn := newTestDB(t)
	sqlDB := openRaw(t, dsn)
	ctx := context.Background()

	role := seedRole(t, sqlDB, "Admin")
	insertUser(t, sqlDB, seedUser{
		email: "inactive@softwear.ph", hash: "H", name: "I", roleID: role, active: false,
	})
	insertUser(t, sqlDB, seedUser{
		email: "archived@softwear.ph", hash: "H", name: "A", roleID: role, active: true, archived: true,
	})
	insertUser(t, sqlDB, seedUser{
		email: "missingrole@softwear.ph", hash: "H", name: "M", roleID: role + 100, active: true,
	})

	for _, email := range []string{"inactive@softwear.ph", "archived@softwear.ph", "nobody@softwear.ph", "missingrole@softwear.ph"} {
		cred, err := store.GetCredentialByEmail(ctx, email)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", email, err)
		}
		if cred != nil {
			t.Fatalf("expected no credential for %s, got %+v", email, cred)
		}
	}
}
