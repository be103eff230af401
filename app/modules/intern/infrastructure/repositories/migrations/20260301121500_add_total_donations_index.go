package internmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_interns_total_donations
				ON interns (total_donations DESC, id ASC);
		`); err != nil {
			return fmt.Errorf("failed to create leaderboard index: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP INDEX IF EXISTS idx_interns_total_donations;`); err != nil {
			return fmt.Errorf("failed to drop leaderboard index: %w", err)
		}
		return nil
	})
}
