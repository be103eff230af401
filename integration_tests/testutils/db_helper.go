package testutils

import (
	"context"
	"fmt"

	internmigrations "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
)

// ResetInterns applies migrations and empties the interns table, restarting
// the id sequence so insertion order is predictable.
func ResetInterns(ctx context.Context, db *bun.DB) error {
	if _, err := internmigrations.Run(ctx, db); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `TRUNCATE TABLE interns RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to truncate interns: %w", err)
	}
	return nil
}

// CountInterns returns the row count seen by the verification connection.
func CountInterns(ctx context.Context, db bun.IDB) (int, error) {
	var n int
	if err := db.NewRaw(`SELECT count(*) FROM interns`).Scan(ctx, &n); err != nil {
		return 0, fmt.Errorf("failed to count interns: %w", err)
	}
	return n, nil
}
