package interndb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// seedLockKey identifies the advisory lock held while seeding.
const seedLockKey int64 = 0x1d7e5eed

// Impl implements Store using Bun ORM on Postgres.
type Impl struct {
	db *bun.DB
}

// NewRepository wraps an open bun connection.
func NewRepository(db *bun.DB) *Impl {
	return &Impl{db: db}
}

// OpenPostgres opens a pool for dsn and verifies it with a ping bounded by timeout.
func OpenPostgres(ctx context.Context, dsn string, timeout time.Duration) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
		pgdriver.WithApplicationName("intern-dashboard"),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return db, nil
}

// DB exposes the underlying connection for migrations.
func (r *Impl) DB() *bun.DB {
	return r.db
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Count returns the number of intern rows.
func (r *Impl) Count(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().Model((*Intern)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count interns: %w", err)
	}
	return n, nil
}

// InsertBatch inserts all records in one statement.
func (r *Impl) InsertBatch(ctx context.Context, db bun.IDB, records []interndomain.InternRecord) error {
	if len(records) == 0 {
		return nil
	}
	db = r.resolveDB(db)

	rows := make([]*Intern, 0, len(records))
	for _, rec := range records {
		rows = append(rows, fromRecord(rec))
	}

	if _, err := db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert interns: %w", err)
	}
	return nil
}

// First returns the earliest inserted row.
func (r *Impl) First(ctx context.Context, db bun.IDB) (*Intern, error) {
	db = r.resolveDB(db)
	intern := new(Intern)
	err := db.NewSelect().
		Model(intern).
		OrderExpr("id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get first intern: %w", err)
	}
	return intern, nil
}

// ListByTotal returns all rows by total_donations descending; id breaks ties.
func (r *Impl) ListByTotal(ctx context.Context, db bun.IDB) ([]Intern, error) {
	db = r.resolveDB(db)
	var interns []Intern
	err := db.NewSelect().
		Model(&interns).
		OrderExpr("total_donations DESC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interns: %w", err)
	}
	return interns, nil
}

// LockSeed blocks until this transaction holds the seeding advisory lock.
// The lock is released at commit or rollback.
func (r *Impl) LockSeed(ctx context.Context, db bun.IDB) error {
	db = r.resolveDB(db)
	if _, err := db.NewRaw("SELECT pg_advisory_xact_lock(?)", seedLockKey).Exec(ctx); err != nil {
		return fmt.Errorf("failed to acquire seed lock: %w", err)
	}
	return nil
}

// RunInTx runs fn inside a single transaction.
func (r *Impl) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.IDB) error) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}

// Close releases the connection pool.
func (r *Impl) Close() error {
	return r.db.Close()
}

var _ Store = (*Impl)(nil)
