package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/taskboard/internal/ciutil"
	"github.com/phrazzld/taskboard/internal/platform/postgres"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// MigrationTableName is the name of the table used by goose to track migrations.
const MigrationTableName = "schema_migrations"

var (
	schemaOnce sync.Once
	schemaErr  error
)

// GetTestDatabaseURL returns the database URL for tests.
// TASKBOARD_TEST_DB_URL takes precedence over DATABASE_URL.
func GetTestDatabaseURL() string {
	return ciutil.TestDatabaseURL(nil)
}

// IsIntegrationTestEnvironment returns true if a test database URL is set.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDBWithT returns a migrated database connection for testing.
// Without a database URL the test is skipped locally and fails in CI.
// The connection is closed when the test ends.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatal("DATABASE_URL or TASKBOARD_TEST_DB_URL must be set in CI")
		}
		t.Skip("DATABASE_URL or TASKBOARD_TEST_DB_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("Database connection failed: %v (url: %s)", err, ciutil.MaskSensitiveValue(dbURL))
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	SetupTestDatabaseSchema(t, db)
	return db
}

// SetupTestDatabaseSchema applies the embedded migrations. Goose keeps its
// settings in package globals, so the work is done once per test binary.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	schemaOnce.Do(func() {
		goose.SetLogger(goose.NopLogger())
		goose.SetTableName(MigrationTableName)
		goose.SetBaseFS(postgres.Migrations)
		if err := goose.SetDialect("postgres"); err != nil {
			schemaErr = fmt.Errorf("failed to set goose dialect: %w", err)
			return
		}
		if err := goose.Up(db, postgres.MigrationsDir); err != nil {
			schemaErr = fmt.Errorf("failed to run migrations: %w", err)
		}
	})

	require.NoError(t, schemaErr, "Database migrations failed")
}
