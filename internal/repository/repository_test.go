package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/folio/folio-go/internal/model"
)

// newTestDB opens a private in-memory SQLite database with every migration
// applied. The app handle is opened first so the shared-cache database
// outlives the migration connection.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	ctx := context.Background()

	db, err := NewDB(ctx, DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Shared-cache connections report table locks instead of waiting.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := Migrate(ctx, DriverSQLite, dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, db *sql.DB, id string) *model.User {
	t.Helper()
	avatar := "https://example.com/" + id + ".png"
	u := &model.User{
		ID:        id,
		Email:     id + "@example.com",
		Name:      "User " + id,
		Password:  "hash",
		Avatar:    &avatar,
		CreatedAt: baseTime,
	}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func strPtr(s string) *string { return &s }
