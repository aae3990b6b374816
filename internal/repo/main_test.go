package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/pkordes/hammock-spots/internal/repo"
	"github.com/pkordes/hammock-spots/migrations"
	"github.com/pkordes/hammock-spots/testutil"
)

// TestMain applies all pending Postgres migrations to the test database once
// for the whole test binary. SQLite tests migrate their own in-memory
// databases and do not depend on this.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured; Postgres tests skip themselves.
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))

	if err := repo.Migrate(context.Background(), db, goose.DialectPostgres, migrations.Postgres()); err != nil {
		db.Close()
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
