package wholesale

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/ports"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios y puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeOutletRepo struct {
	mu       sync.Mutex
	outlets  []*entity.Outlet
	listErr  error
	replaced map[string][]entity.MonthlyKilos
}

func (f *fakeOutletRepo) find(id string) *entity.Outlet {
	for _, o := range f.outlets {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (f *fakeOutletRepo) Create(_ context.Context, o *entity.Outlet) error {
	o.ID = "new-outlet"
	f.outlets = append(f.outlets, o)
	return nil
}

func (f *fakeOutletRepo) GetByID(_ context.Context, id string) (*entity.Outlet, error) {
	o := f.find(id)
	if o == nil {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOutletRepo) ListActive(_ context.Context) ([]*entity.Outlet, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.Outlet
	for _, o := range f.outlets {
		if o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOutletRepo) Update(_ context.Context, o *entity.Outlet) error {
	cur := f.find(o.ID)
	if cur == nil {
		return domain.ErrNotFound
	}
	ledger := cur.MonthlyKilos
	*cur = *o
	cur.MonthlyKilos = ledger
	return nil
}

func (f *fakeOutletRepo) Deactivate(_ context.Context, id string) error {
	o := f.find(id)
	if o == nil {
		return domain.ErrNotFound
	}
	o.IsActive = false
	return nil
}

func (f *fakeOutletRepo) ReplaceMonthlyKilos(_ context.Context, id string, ledger []entity.MonthlyKilos) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaced == nil {
		f.replaced = make(map[string][]entity.MonthlyKilos)
	}
	f.replaced[id] = ledger
	return nil
}

func (f *fakeOutletRepo) SetMonthlyKilos(_ context.Context, id string, entry entity.MonthlyKilos) error {
	o := f.find(id)
	if o == nil {
		return domain.ErrNotFound
	}
	for i, e := range o.MonthlyKilos {
		if e.Month == entry.Month && e.Year == entry.Year {
			o.MonthlyKilos[i].Kilos = entry.Kilos
			return nil
		}
	}
	o.MonthlyKilos = append(o.MonthlyKilos, entry)
	return nil
}

type fakeOrderRepo struct {
	byOutlet map[string][]entity.Order
	err      error
	asked    [][]string
}

func (f *fakeOrderRepo) ListWholesaleByOutlets(_ context.Context, ids []string) (map[string][]entity.Order, error) {
	f.asked = append(f.asked, ids)
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string][]entity.Order)
	for _, id := range ids {
		if orders, ok := f.byOutlet[id]; ok {
			out[id] = orders
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByRange(context.Context, time.Time, time.Time) ([]entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(context.Context, string, string) error { return nil }

func (f *fakeOrderRepo) MarkContacted(context.Context, string, time.Time) error { return nil }

type fakeUnmatchedRepo struct {
	upserted []entity.UnmatchedItem
	listed   []entity.UnmatchedItem
}

func (f *fakeUnmatchedRepo) Upsert(_ context.Context, items []entity.UnmatchedItem) error {
	f.upserted = append(f.upserted, items...)
	return nil
}

func (f *fakeUnmatchedRepo) List(_ context.Context, limit int) ([]entity.UnmatchedItem, error) {
	if limit < len(f.listed) {
		return f.listed[:limit], nil
	}
	return f.listed, nil
}

type fakeMatchers struct {
	entries []catalog.Entry
	err     error
}

func (f fakeMatchers) WholesaleMatcher(context.Context) (*catalog.Matcher, error) {
	if f.err != nil {
		return nil, f.err
	}
	return catalog.NewMatcher(f.entries), nil
}

type fakePDF struct{ got *dto.WholesaleStatsDTO }

func (f *fakePDF) GenerateStatsPDF(stats *dto.WholesaleStatsDTO) ([]byte, error) {
	f.got = stats
	return []byte("%PDF-1.4"), nil
}

type fakeEmail struct{ sent []ports.EmailMessage }

func (f *fakeEmail) SendBatch(_ context.Context, msgs []ports.EmailMessage) error {
	f.sent = append(f.sent, msgs...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func testCatalog() fakeMatchers {
	return fakeMatchers{entries: []catalog.Entry{
		catalog.NewEntry("BIG DOG", "15KG"),
		catalog.NewEntry("GATO", "10KG"),
	}}
}

func bigDogOrder(t time.Time, qty int, extra ...entity.LineItem) entity.Order {
	items := append([]entity.LineItem{{
		Name:    "BIG DOG (15kg) - POLLO",
		Options: []entity.ItemOption{{Name: "POLLO", Quantity: qty}},
	}}, extra...)
	return entity.Order{CreatedAt: t, OrderType: entity.OrderTypeMayorista, Items: items}
}

func march(day int) time.Time {
	return time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC)
}
