package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

var errStockConflict = errors.Join(errors.New("stock conflict"), domain.ErrInsufficientStock)

// mockStore keeps all rows in memory. Transactions work on a copy that is
// swapped in on success, so a failed fn leaves the store untouched.
type mockStore struct {
	mu        sync.Mutex
	customers map[int64]domain.Customer
	products  map[int64]domain.Product
	sales     []domain.Sale
	items     []domain.SaleItem

	txErr     error
	insertErr error
	commits   int
	rollbacks int
}

func newMockStore() *mockStore {
	return &mockStore{
		customers: make(map[int64]domain.Customer),
		products:  make(map[int64]domain.Product),
	}
}

func (m *mockStore) addCustomer(id int64, name string) {
	m.customers[id] = domain.Customer{ID: id, Name: name}
}

func (m *mockStore) addProduct(p domain.Product) {
	m.products[p.ID] = p
}

func (m *mockStore) stock(id int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

func (m *mockStore) CreateCustomer(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	c.ID = int64(len(m.customers) + 1)
	m.customers[c.ID] = c
	return &c, nil
}

func (m *mockStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Customer{}
	for _, id := range slices.Sorted(maps.Keys(m.customers)) {
		out = append(out, m.customers[id])
	}
	return out, nil
}

func (m *mockStore) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	p.ID = int64(len(m.products) + 1)
	m.products[p.ID] = p
	return &p, nil
}

func (m *mockStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Product{}
	for _, id := range slices.Sorted(maps.Keys(m.products)) {
		out = append(out, m.products[id])
	}
	return out, nil
}

func (m *mockStore) WithinTx(ctx context.Context, fn func(tx port.SaleTx) error) error {
	// one transaction at a time, like a row lock on every product
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &mockTx{
		store:    m,
		products: maps.Clone(m.products),
		sales:    slices.Clone(m.sales),
		items:    slices.Clone(m.items),
	}
	if err := fn(tx); err != nil {
		m.rollbacks++
		return err
	}
	if m.txErr != nil {
		m.rollbacks++
		return m.txErr
	}

	m.products = tx.products
	m.sales = tx.sales
	m.items = tx.items
	m.commits++
	return nil
}

func (m *mockStore) ListSales(ctx context.Context) ([]domain.SaleSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.SaleSummary{}
	for i := len(m.sales) - 1; i >= 0; i-- {
		s := m.sales[i]
		out = append(out, domain.SaleSummary{
			ID:           s.ID,
			Timestamp:    s.CreatedAt,
			Total:        s.Total,
			CustomerName: m.customers[s.CustomerID].Name,
		})
	}
	return out, nil
}

func (m *mockStore) ListSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItemDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.SaleItemDetail{}
	for _, it := range m.items {
		if it.SaleID != saleID {
			continue
		}
		out = append(out, domain.SaleItemDetail{
			ID:          it.ID,
			ProductName: m.products[it.ProductID].Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out, nil
}

type mockTx struct {
	store    *mockStore
	products map[int64]domain.Product
	sales    []domain.Sale
	items    []domain.SaleItem
}

func (t *mockTx) CustomerExists(ctx context.Context, id int64) (bool, error) {
	_, ok := t.store.customers[id]
	return ok, nil
}

func (t *mockTx) GetProductForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := t.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (t *mockTx) DecrementStock(ctx context.Context, id int64, quantity int) error {
	p := t.products[id]
	if p.Stock < quantity {
		return errStockConflict
	}
	p.Stock -= quantity
	t.products[id] = p
	return nil
}

func (t *mockTx) InsertSale(ctx context.Context, sale domain.Sale) (int64, error) {
	sale.ID = int64(len(t.sales) + 1)
	t.sales = append(t.sales, sale)
	return sale.ID, nil
}

func (t *mockTx) InsertSaleItem(ctx context.Context, item domain.SaleItem) (int64, error) {
	if t.store.insertErr != nil {
		return 0, t.store.insertErr
	}
	item.ID = int64(len(t.items) + 1)
	t.items = append(t.items, item)
	return item.ID, nil
}
