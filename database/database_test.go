package database

import (
	"path/filepath"
	"testing"
)

func TestIsPostgres(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost:5432/db":          true,
		"postgresql://localhost/db":                 true,
		"host=localhost user=u dbname=db port=5432": true,
		"construlab.db":                             false,
		"file::memory:?cache=shared":                false,
	}
	for dsn, want := range cases {
		if got := isPostgres(dsn); got != want {
			t.Fatalf("%q: expected %v, got %v", dsn, want, got)
		}
	}
}

func TestOpen_SQLiteMigrates(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, m := range Models() {
		if !db.Migrator().HasTable(m) {
			t.Fatalf("missing table for %T", m)
		}
	}
}

func TestOpen_EmptyDSN(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}
