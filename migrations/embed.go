// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and server bootstrap.
// Each store dialect keeps its own directory of migrations.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var all embed.FS

// Postgres returns the migrations for the pgx-backed store, rooted so that
// goose sees the *.sql files at the top level.
func Postgres() fs.FS {
	return mustSub("postgres")
}

// SQLite returns the migrations for the modernc sqlite store.
func SQLite() fs.FS {
	return mustSub("sqlite")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(all, dir)
	if err != nil {
		// Only reachable if the embed pattern above is edited incorrectly.
		panic(fmt.Sprintf("migrations: sub %q: %v", dir, err))
	}
	return sub
}
