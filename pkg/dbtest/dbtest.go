// Package dbtest hands out isolated in-memory sqlite databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"qa-catalog/pkg/sqlc"
	"qa-catalog/pkg/sqlc/gen"
)

// GetTestDB opens a uniquely named in-memory database so parallel tests
// never share state, and applies the schema.
func GetTestDB(ctx context.Context) (*sql.DB, error) {
	uniqueName := ulid.Make().String()
	connStr := fmt.Sprintf("file:testdb_%s?mode=memory&cache=shared", uniqueName)

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, err
	}

	err = sqlc.CreateLocalTables(ctx, db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func GetTestPreparedQueries(ctx context.Context) (*sql.DB, *gen.Queries, error) {
	db, err := GetTestDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	prepared, err := gen.Prepare(ctx, db)
	if err != nil {
		return nil, nil, err
	}

	return db, prepared, nil
}
