package internservice

import (
	"context"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
)

// ------------------------
// Fake Gateway
// ------------------------

type FakeGateway struct {
	trace []string

	ConnectedFunc  func() bool
	GetPrimaryFunc func(ctx context.Context) (interndomain.InternRecord, error)
	ListAllFunc    func(ctx context.Context) ([]interndomain.InternRecord, error)
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		trace: []string{},
	}
}

func (f *FakeGateway) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGateway) Connected() bool {
	f.record("Connected")
	if f.ConnectedFunc != nil {
		return f.ConnectedFunc()
	}
	return false
}

func (f *FakeGateway) GetPrimary(ctx context.Context) (interndomain.InternRecord, error) {
	f.record("GetPrimary")
	if f.GetPrimaryFunc != nil {
		return f.GetPrimaryFunc(ctx)
	}
	return interndomain.InternRecord{}, nil
}

func (f *FakeGateway) ListAll(ctx context.Context) ([]interndomain.InternRecord, error) {
	f.record("ListAll")
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return nil, nil
}

// --- Accessors for assertions ---

func (f *FakeGateway) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ DataGateway = (*FakeGateway)(nil)
