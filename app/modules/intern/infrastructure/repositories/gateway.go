package interndb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/Black-And-White-Club/intern-dashboard/app/observability/attr"
	internmetrics "github.com/Black-And-White-Club/intern-dashboard/app/observability/metrics/intern"
	"github.com/uptrace/bun"
)

// DefaultReadTimeout bounds a single read when GatewayConfig leaves it unset.
const DefaultReadTimeout = 3 * time.Second

// ConnectivityState reports whether the initial connection attempt succeeded.
type ConnectivityState int

const (
	StateDisconnected ConnectivityState = iota
	StateConnected
)

func (s ConnectivityState) String() string {
	if s == StateConnected {
		return "connected"
	}
	return "disconnected"
}

// DialFunc opens a Store. It is called at most once per Gateway.
type DialFunc func(ctx context.Context) (Store, error)

// PostgresDialer opens a bun pool on dsn and runs onConnect (migrations) before
// handing the store to the gateway. onConnect may be nil.
func PostgresDialer(dsn string, connectTimeout time.Duration, onConnect func(ctx context.Context, db *bun.DB) error) DialFunc {
	return func(ctx context.Context) (Store, error) {
		db, err := OpenPostgres(ctx, dsn, connectTimeout)
		if err != nil {
			return nil, err
		}
		if onConnect != nil {
			if err := onConnect(ctx, db); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to prepare schema: %w", err)
			}
		}
		return NewRepository(db), nil
	}
}

// GatewayConfig tunes read behaviour.
type GatewayConfig struct {
	ReadTimeout time.Duration
}

type connection struct {
	store Store
}

// Gateway owns the single connection attempt to the persistent store and the
// connectivity state that results from it. The state is written once and never
// reverts; individual read failures surface as ErrSourceUnavailable.
type Gateway struct {
	dial        DialFunc
	logger      *slog.Logger
	metrics     internmetrics.InternMetrics
	readTimeout time.Duration

	conn    atomic.Pointer[connection]
	started atomic.Bool
	done    chan struct{}

	mu      sync.Mutex
	lastErr error
}

// NewGateway creates a disconnected gateway. Call Connect to start the attempt.
func NewGateway(dial DialFunc, logger *slog.Logger, metrics internmetrics.InternMetrics, cfg GatewayConfig) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = internmetrics.NewNoop()
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	return &Gateway{
		dial:        dial,
		logger:      logger,
		metrics:     metrics,
		readTimeout: cfg.ReadTimeout,
		done:        make(chan struct{}),
	}
}

// Connect starts the background connection attempt and returns immediately.
// Only the first call has any effect.
func (g *Gateway) Connect(ctx context.Context) {
	if !g.started.CompareAndSwap(false, true) {
		return
	}
	go g.attempt(ctx)
}

func (g *Gateway) attempt(ctx context.Context) {
	defer close(g.done)
	defer func() {
		if r := recover(); r != nil {
			g.fail(ctx, fmt.Errorf("panic during connect: %v", r))
		}
	}()

	store, err := g.dial(ctx)
	if err != nil {
		g.fail(ctx, err)
		return
	}

	// Published after seeding so no request reads the table before it is populated.
	inserted, err := g.seed(ctx, store)
	if err != nil {
		g.logger.WarnContext(ctx, "Seeding persistent store failed", attr.Error(err))
	} else if inserted > 0 {
		g.logger.InfoContext(ctx, "Seeded persistent store", attr.Int("inserted", inserted))
	}

	if !g.conn.CompareAndSwap(nil, &connection{store: store}) {
		store.Close()
		return
	}
	g.metrics.SetStoreConnected(true)
	g.logger.InfoContext(ctx, "Persistent store connected")
}

func (g *Gateway) fail(ctx context.Context, err error) {
	g.mu.Lock()
	g.lastErr = err
	g.mu.Unlock()

	g.metrics.SetStoreConnected(false)
	g.logger.WarnContext(ctx, "Persistent store unavailable, serving fallback data", attr.Error(err))
}

// Done is closed once the connection attempt, including seeding, has finished.
func (g *Gateway) Done() <-chan struct{} {
	return g.done
}

// State returns the current connectivity state.
func (g *Gateway) State() ConnectivityState {
	if g.conn.Load() != nil {
		return StateConnected
	}
	return StateDisconnected
}

// Connected reports whether the store is usable.
func (g *Gateway) Connected() bool {
	return g.State() == StateConnected
}

// LastError returns the reason the connection attempt failed, if it did.
func (g *Gateway) LastError() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

func (g *Gateway) store() (Store, error) {
	c := g.conn.Load()
	if c == nil {
		return nil, ErrNotConnected
	}
	return c.store, nil
}

// SeedIfEmpty inserts the canonical dataset when the table holds no rows and
// returns how many rows were inserted.
func (g *Gateway) SeedIfEmpty(ctx context.Context) (int, error) {
	store, err := g.store()
	if err != nil {
		return 0, err
	}
	return g.seed(ctx, store)
}

// seed holds the advisory lock for the whole count+insert so concurrent
// processes cannot both observe an empty table.
func (g *Gateway) seed(ctx context.Context, store Store) (int, error) {
	records := interndomain.SeedRecords()
	if err := interndomain.ValidateAll(records); err != nil {
		return 0, err
	}

	inserted := 0
	err := store.RunInTx(ctx, func(ctx context.Context, tx bun.IDB) error {
		if err := store.LockSeed(ctx, tx); err != nil {
			return err
		}
		n, err := store.Count(ctx, tx)
		if err != nil {
			return err
		}
		if n != 0 {
			return nil
		}
		if err := store.InsertBatch(ctx, tx, records); err != nil {
			return err
		}
		inserted = len(records)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed interns: %w", err)
	}

	g.metrics.RecordSeed(ctx, inserted)
	return inserted, nil
}

// GetPrimary returns the first record in insertion order.
//
// Errors:
//   - ErrNotConnected: the connection attempt has not succeeded
//   - ErrNotFound: the table is empty
//   - ErrSourceUnavailable: the read failed or returned an invalid row
func (g *Gateway) GetPrimary(ctx context.Context) (interndomain.InternRecord, error) {
	store, err := g.store()
	if err != nil {
		return interndomain.InternRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.readTimeout)
	defer cancel()

	row, err := store.First(ctx, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return interndomain.InternRecord{}, ErrNotFound
		}
		return interndomain.InternRecord{}, fmt.Errorf("%w: get primary: %w", ErrSourceUnavailable, err)
	}

	rec := row.ToRecord()
	if err := rec.Validate(); err != nil {
		return interndomain.InternRecord{}, fmt.Errorf("%w: get primary: %w", ErrSourceUnavailable, err)
	}
	return rec, nil
}

// ListAll returns every record sorted by total donations, highest first, ties
// in insertion order. An empty table yields an empty slice.
func (g *Gateway) ListAll(ctx context.Context) ([]interndomain.InternRecord, error) {
	store, err := g.store()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.readTimeout)
	defer cancel()

	rows, err := store.ListByTotal(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list all: %w", ErrSourceUnavailable, err)
	}

	records := make([]interndomain.InternRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}
	if err := interndomain.ValidateAll(records); err != nil {
		return nil, fmt.Errorf("%w: list all: %w", ErrSourceUnavailable, err)
	}

	// Stable sort, so query order is preserved for ties.
	return interndomain.SortByTotal(records), nil
}

// Close releases the store if the gateway connected.
func (g *Gateway) Close() error {
	c := g.conn.Load()
	if c == nil {
		return nil
	}
	return c.store.Close()
}
