package dashboard

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/store"
)

var (
	ErrNotConfirmed  = errors.New("delete not confirmed")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrOrderNotFound = errors.New("order not loaded")
)

// Recorder receives board activity for metrics.
type Recorder interface {
	ObserveFetch(elapsed time.Duration, err error)
	OrdersLoaded(n int)
	Mutation(action string, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(time.Duration, error) {}
func (nopRecorder) OrdersLoaded(int)                  {}
func (nopRecorder) Mutation(string, error)            {}

type Options struct {
	Cache    SnapshotCache
	Recorder Recorder
}

// Board is the in-memory mirror of the last order fetch. Mutations go to the
// store first for deletes; status changes are applied provisionally and
// rolled back if the store rejects them.
type Board struct {
	store    store.OrderStore
	cache    SnapshotCache
	recorder Recorder

	mu       sync.RWMutex
	orders   []models.Order
	loadedAt time.Time
}

func NewBoard(s store.OrderStore, opts Options) *Board {
	b := &Board{store: s, cache: opts.Cache, recorder: opts.Recorder}
	if b.cache == nil {
		b.cache = nopCache{}
	}
	if b.recorder == nil {
		b.recorder = nopRecorder{}
	}
	return b
}

// Refresh replaces the mirror with a fresh read of all orders. On failure the
// mirror keeps its previous contents, or is seeded from the snapshot cache
// when it is empty, and the fetch error is returned.
func (b *Board) Refresh(ctx context.Context) error {
	start := time.Now()
	orders, err := b.store.FetchOrders(ctx)
	b.recorder.ObserveFetch(time.Since(start), err)
	if err != nil {
		log.Printf("dashboard: error fetching orders: %v", err)
		b.seedFromCache(ctx)
		return err
	}

	b.mu.Lock()
	b.orders = orders
	b.loadedAt = time.Now()
	b.mu.Unlock()
	b.recorder.OrdersLoaded(len(orders))

	if err := b.cache.Save(ctx, orders); err != nil {
		log.Printf("dashboard: %v", err)
	}
	return nil
}

func (b *Board) seedFromCache(ctx context.Context) {
	b.mu.RLock()
	empty := len(b.orders) == 0
	b.mu.RUnlock()
	if !empty {
		return
	}

	orders, err := b.cache.Load(ctx)
	if err != nil {
		log.Printf("dashboard: %v", err)
		return
	}
	if len(orders) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.orders) == 0 {
		b.orders = orders
		log.Printf("dashboard: seeded %d orders from snapshot cache", len(orders))
	}
}

// Orders returns a copy of the mirrored order list.
func (b *Board) Orders() []models.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

func (b *Board) Order(id string) (models.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.orders[i], true
	}
	return models.Order{}, false
}

// LoadedAt is the time of the last successful refresh.
func (b *Board) LoadedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loadedAt
}

// Delete removes the order from the store and then from the mirror. It does
// nothing unless confirmed is true.
func (b *Board) Delete(ctx context.Context, id string, confirmed bool) (*Notice, error) {
	if !confirmed {
		return nil, ErrNotConfirmed
	}

	err := b.store.Delete(ctx, id)
	b.recorder.Mutation("delete", err)
	if err != nil {
		log.Printf("dashboard: error deleting order %s: %v", id, err)
		n := NoticeDeleteFailed
		return &n, err
	}

	b.mu.Lock()
	if i := b.indexOf(id); i >= 0 {
		b.orders = append(b.orders[:i:i], b.orders[i+1:]...)
	}
	b.mu.Unlock()

	n := NoticeDeleted
	return &n, nil
}

// ChangeStatus sets the order's status. The returned notice is nil when a
// successful change has nothing to announce.
func (b *Board) ChangeStatus(ctx context.Context, id string, status models.OrderStatus) (*Notice, error) {
	failed := NoticeStatusFailed
	if !status.Valid() {
		return &failed, ErrUnknownStatus
	}

	b.mu.Lock()
	var prev models.OrderStatus
	i := b.indexOf(id)
	if i >= 0 {
		prev = b.orders[i].Status
		b.orders[i].Status = status
	}
	b.mu.Unlock()

	err := b.store.SetStatus(ctx, id, status)
	b.recorder.Mutation("status", err)
	if err != nil {
		log.Printf("dashboard: error updating order %s status: %v", id, err)
		if i >= 0 {
			b.rollbackStatus(id, status, prev)
		}
		return &failed, err
	}
	return StatusNotice(status), nil
}

// rollbackStatus restores prev unless another change already replaced the
// provisional value.
func (b *Board) rollbackStatus(id string, provisional, prev models.OrderStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 && b.orders[i].Status == provisional {
		b.orders[i].Status = prev
	}
}

func (b *Board) indexOf(id string) int {
	for i := range b.orders {
		if b.orders[i].ID == id {
			return i
		}
	}
	return -1
}
