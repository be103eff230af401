package interndb

import (
	"context"
	"sync"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Store
// ------------------------

// FakeStore keeps rows in memory unless a Func override is set.
type FakeStore struct {
	mu    sync.Mutex
	trace []string
	rows  []Intern

	CountFunc       func(ctx context.Context, db bun.IDB) (int, error)
	InsertBatchFunc func(ctx context.Context, db bun.IDB, records []interndomain.InternRecord) error
	FirstFunc       func(ctx context.Context, db bun.IDB) (*Intern, error)
	ListByTotalFunc func(ctx context.Context, db bun.IDB) ([]Intern, error)
	LockSeedFunc    func(ctx context.Context, db bun.IDB) error
	CloseFunc       func() error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		trace: []string{},
	}
}

func (f *FakeStore) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeStore) Count(ctx context.Context, db bun.IDB) (int, error) {
	f.record("Count")
	if f.CountFunc != nil {
		return f.CountFunc(ctx, db)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows), nil
}

func (f *FakeStore) InsertBatch(ctx context.Context, db bun.IDB, records []interndomain.InternRecord) error {
	f.record("InsertBatch")
	if f.InsertBatchFunc != nil {
		return f.InsertBatchFunc(ctx, db, records)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range records {
		row := *fromRecord(r)
		row.ID = int64(len(f.rows) + 1)
		f.rows = append(f.rows, row)
	}
	return nil
}

func (f *FakeStore) First(ctx context.Context, db bun.IDB) (*Intern, error) {
	f.record("First")
	if f.FirstFunc != nil {
		return f.FirstFunc(ctx, db)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) == 0 {
		return nil, ErrNotFound
	}
	row := f.rows[0]
	return &row, nil
}

func (f *FakeStore) ListByTotal(ctx context.Context, db bun.IDB) ([]Intern, error) {
	f.record("ListByTotal")
	if f.ListByTotalFunc != nil {
		return f.ListByTotalFunc(ctx, db)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Intern, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *FakeStore) LockSeed(ctx context.Context, db bun.IDB) error {
	f.record("LockSeed")
	if f.LockSeedFunc != nil {
		return f.LockSeedFunc(ctx, db)
	}
	return nil
}

func (f *FakeStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.IDB) error) error {
	f.record("RunInTx")
	return fn(ctx, nil)
}

func (f *FakeStore) Close() error {
	f.record("Close")
	if f.CloseFunc != nil {
		return f.CloseFunc()
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakeStore) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeStore) Rows() []Intern {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Intern, len(f.rows))
	copy(out, f.rows)
	return out
}

// Ensure the fake actually satisfies the interface
var _ Store = (*FakeStore)(nil)
