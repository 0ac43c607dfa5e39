package service

import (
	"context"
	"sync"
	"time"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ────────────────────────────────────────────────────────────────────

// stubStockRepo is an in-memory StockItemRepository. afterFind, when set,
// runs after every FindByID with no lock held — the concurrency tests use it
// as a rendezvous point.
type stubStockRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]*model.StockItem
	afterFind func()
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{items: make(map[uuid.UUID]*model.StockItem)}
}

func (r *stubStockRepo) add(item model.StockItem) uuid.UUID {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.mu.Lock()
	r.items[item.ID] = &item
	r.mu.Unlock()
	return item.ID
}

func (r *stubStockRepo) Create(_ context.Context, item *model.StockItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.mu.Lock()
	cp := *item
	r.items[item.ID] = &cp
	r.mu.Unlock()
	return nil
}

func (r *stubStockRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockItem, error) {
	r.mu.Lock()
	item, ok := r.items[id]
	var cp model.StockItem
	if ok {
		cp = *item
	}
	r.mu.Unlock()
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if r.afterFind != nil {
		r.afterFind()
	}
	return &cp, nil
}

func (r *stubStockRepo) List(_ context.Context, filter dto.StockItemFilter) ([]model.StockItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.StockItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, int64(len(out)), nil
}

func (r *stubStockRepo) Replace(_ context.Context, id uuid.UUID, item *model.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.ID = id
	item.CreatedAt = existing.CreatedAt
	cp := *item
	r.items[id] = &cp
	return nil
}

func (r *stubStockRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubStockRepo) UpdateQuantityCost(_ context.Context, id uuid.UUID, quantity, costPerUnit decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	item.CostPerUnit = costPerUnit
	return nil
}

var _ repository.StockItemRepository = (*stubStockRepo)(nil)

// stubCustomerRepo counts inserts so tests can assert how many customers a
// flow created.
type stubCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*model.Customer
	created   int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) add(c model.Customer) uuid.UUID {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.mu.Lock()
	r.customers[c.ID] = &c
	r.mu.Unlock()
	return c.ID
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.mu.Lock()
	cp := *c
	r.customers[c.ID] = &cp
	r.created++
	r.mu.Unlock()
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) List(_ context.Context, skip, limit int) ([]model.Customer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// stubInvoiceRepo is an in-memory InvoiceRepository. afterFindLatest mirrors
// stubStockRepo.afterFind for the allocator concurrency test.
type stubInvoiceRepo struct {
	mu              sync.Mutex
	invoices        map[uuid.UUID]*model.Invoice
	order           []uuid.UUID // creation order
	afterFindLatest func()
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice)}
}

func (r *stubInvoiceRepo) add(inv model.Invoice) uuid.UUID {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	r.mu.Lock()
	r.invoices[inv.ID] = &inv
	r.order = append(r.order, inv.ID)
	r.mu.Unlock()
	return inv.ID
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now()
	r.mu.Lock()
	cp := *inv
	r.invoices[inv.ID] = &cp
	r.order = append(r.order, inv.ID)
	r.mu.Unlock()
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInvoiceRepo) List(_ context.Context, skip, limit int) ([]model.Invoice, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.invoices[id])
	}
	return out, int64(len(out)), nil
}

func (r *stubInvoiceRepo) FindLatestNumbered(_ context.Context) (*model.Invoice, error) {
	r.mu.Lock()
	var latest *model.Invoice
	for i := len(r.order) - 1; i >= 0; i-- {
		if inv := r.invoices[r.order[i]]; inv.InvoiceNumber != "" {
			cp := *inv
			latest = &cp
			break
		}
	}
	r.mu.Unlock()
	if r.afterFindLatest != nil {
		r.afterFindLatest()
	}
	return latest, nil
}

func (r *stubInvoiceRepo) Replace(_ context.Context, id uuid.UUID, inv *model.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.ID = id
	inv.CreatedAt = existing.CreatedAt
	cp := *inv
	r.invoices[id] = &cp
	return nil
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

// stubUserRepo backs the auth tests.
type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Draft helpers ────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

// minimalDraft returns a valid inline-customer invoice draft.
func minimalDraft() dto.InvoiceDraft {
	return dto.InvoiceDraft{
		CustomerName:  strPtr("Walk-in Customer"),
		CustomerPhone: strPtr("9000000000"),
		Date:          "2026-08-30",
		Items: []dto.InvoiceItemDTO{
			{
				ProductID:   "croissant",
				ProductName: "Croissant",
				Quantity:    2,
				Price:       decimal.NewFromInt(75),
			},
		},
		Subtotal:      decimal.NewFromInt(150),
		Total:         decimal.NewFromInt(150),
		PaymentStatus: "paid",
		OrderType:     "takeaway",
		AmountPaid:    decimal.NewFromInt(150),
	}
}
