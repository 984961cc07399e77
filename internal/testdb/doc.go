// Package testdb provides utilities for database integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can run in parallel without affecting each other's data
// and no manual cleanup is needed.
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t) // skips when DATABASE_URL is unset
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
//
// GetTestDBWithT applies the embedded goose migrations once per process
// before handing out the connection.
package testdb
