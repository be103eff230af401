package interndb

import (
	"context"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for intern persistence.
// A nil db argument means the repository's own connection.
//
// Error semantics:
//   - ErrNotFound: the table is empty
//   - Other errors: infrastructure failures (connection, query, timeout)
type Repository interface {
	// Count returns the number of intern rows.
	Count(ctx context.Context, db bun.IDB) (int, error)

	// InsertBatch inserts all records in one statement, in slice order.
	InsertBatch(ctx context.Context, db bun.IDB, records []interndomain.InternRecord) error

	// First returns the earliest inserted row.
	First(ctx context.Context, db bun.IDB) (*Intern, error)

	// ListByTotal returns all rows by total_donations descending, ties in insertion order.
	ListByTotal(ctx context.Context, db bun.IDB) ([]Intern, error)

	// LockSeed takes the transaction-scoped seeding lock. db must be a transaction.
	LockSeed(ctx context.Context, db bun.IDB) error
}

// Store is a live connection to the interns table.
type Store interface {
	Repository

	// RunInTx runs fn inside a single transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.IDB) error) error

	// Close releases the connection pool.
	Close() error
}
