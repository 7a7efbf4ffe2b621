package dashboard

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/store"
)

type fakeStore struct {
	mu        sync.Mutex
	orders    []models.Order
	fetchErr  error
	statusErr error
	deleteErr error

	fetches  int
	deletes  []string
	patches  map[string]models.OrderStatus
	onStatus func()
}

func newFakeStore(orders ...models.Order) *fakeStore {
	return &fakeStore{orders: orders, patches: map[string]models.OrderStatus{}}
}

func (f *fakeStore) FetchOrders(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]models.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeStore) SetStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if f.onStatus != nil {
		f.onStatus()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	f.patches[id] = status
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

var _ store.OrderStore = (*fakeStore)(nil)

type memCache struct {
	saved   []models.Order
	loadErr error
}

func (c *memCache) Save(ctx context.Context, orders []models.Order) error {
	c.saved = orders
	return nil
}

func (c *memCache) Load(ctx context.Context) ([]models.Order, error) {
	return c.saved, c.loadErr
}

func order(id string, status models.OrderStatus, total int64) models.Order {
	return models.Order{
		ID:        id,
		FirstName: "First " + id,
		LastName:  "Last " + id,
		Email:     id + "@example.com",
		Total:     decimal.NewFromInt(total),
		Status:    status,
	}
}
