package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	domainerrors "streaming-service.backend/internal/domain/errors"
)

const terminateBackendsSQL = `
SELECT pg_terminate_backend(pg_stat_activity.pid)
FROM pg_stat_activity
WHERE pg_stat_activity.datname = $1
AND pid <> pg_backend_pid()`

// DatabaseAdmin runs database-level statements over a maintenance connection
type DatabaseAdmin struct {
	conn *sql.DB
}

// NewDatabaseAdmin wraps a connection to a database other than the one being dropped
func NewDatabaseAdmin(conn *sql.DB) *DatabaseAdmin {
	return &DatabaseAdmin{conn: conn}
}

// DropDatabase terminates the other sessions on name and drops it if it exists
func (a *DatabaseAdmin) DropDatabase(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: database name is required", domainerrors.ErrInvalidInput)
	}
	if _, err := a.conn.ExecContext(ctx, terminateBackendsSQL, name); err != nil {
		return fmt.Errorf("terminate backends of %s: %w", name, err)
	}
	if _, err := a.conn.ExecContext(ctx, dropDatabaseSQL(name)); err != nil {
		return fmt.Errorf("drop database %s: %w", name, err)
	}
	return nil
}

func dropDatabaseSQL(name string) string {
	return "DROP DATABASE IF EXISTS " + pq.QuoteIdentifier(name)
}
