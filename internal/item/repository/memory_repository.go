package repository

import (
	"sync"

	"github.com/ridloal/item-inventory-service/internal/item/domain"
)

// ItemRepository owns the item collection. Lookups of unknown ids report
// absence and mutations of unknown ids are silent no-ops; nothing here fails.
type ItemRepository interface {
	FindByID(id int) (domain.Item, bool)
	ListAll() []domain.Item
	FilterByCategory(category string) []domain.Item
	Count() int
	Create(item domain.NewItem) domain.Item
	Remove(id int)
	// Update reports the merged item, or false when no item has the id.
	Update(id int, patch domain.ItemPatch) (domain.Item, bool)
	Reset()
	Subscribe(fn Listener) (unsubscribe func())
}

// SeedSource hands out fresh copies of the initial collection.
type SeedSource interface {
	Items() []domain.Item
}

type memoryItemRepository struct {
	mu        sync.RWMutex
	items     []domain.Item
	seed      SeedSource
	listeners listeners
}

func NewMemoryItemRepository(seed SeedSource) ItemRepository {
	return &memoryItemRepository{
		items: seed.Items(),
		seed:  seed,
	}
}

func (r *memoryItemRepository) FindByID(id int) (domain.Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx := r.indexOf(id); idx >= 0 {
		return r.items[idx].Clone(), true
	}
	return domain.Item{}, false
}

// ListAll returns the items in insertion order. The slice is a snapshot;
// Subscribe to learn about later changes.
func (r *memoryItemRepository) ListAll() []domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CloneItems(r.items)
}

func (r *memoryItemRepository) FilterByCategory(category string) []domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := []domain.Item{}
	for _, it := range r.items {
		if it.Category == category {
			matches = append(matches, it.Clone())
		}
	}
	return matches
}

func (r *memoryItemRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Create assigns max(id)+1, or 1 on an empty collection, and appends.
func (r *memoryItemRepository) Create(item domain.NewItem) domain.Item {
	r.mu.Lock()
	nextID := 1
	if len(r.items) > 0 {
		maxID := r.items[0].ID
		for _, it := range r.items[1:] {
			if it.ID > maxID {
				maxID = it.ID
			}
		}
		nextID = maxID + 1
	}
	created := item.WithID(nextID)
	r.items = append(r.items, created)
	count := len(r.items)
	r.mu.Unlock()

	r.listeners.publish(Event{Type: EventItemCreated, ItemID: created.ID, Count: count})
	return created.Clone()
}

func (r *memoryItemRepository) Remove(id int) {
	r.mu.Lock()
	idx := r.indexOf(id)
	if idx < 0 {
		r.mu.Unlock()
		return
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	count := len(r.items)
	r.mu.Unlock()

	r.listeners.publish(Event{Type: EventItemRemoved, ItemID: id, Count: count})
}

// Update merges patch into the item. An empty patch changes nothing and
// publishes nothing.
func (r *memoryItemRepository) Update(id int, patch domain.ItemPatch) (domain.Item, bool) {
	r.mu.Lock()
	idx := r.indexOf(id)
	if idx < 0 {
		r.mu.Unlock()
		return domain.Item{}, false
	}
	if patch.IsEmpty() {
		current := r.items[idx].Clone()
		r.mu.Unlock()
		return current, true
	}
	r.items[idx] = patch.Apply(r.items[idx])
	merged := r.items[idx].Clone()
	count := len(r.items)
	r.mu.Unlock()

	r.listeners.publish(Event{Type: EventItemUpdated, ItemID: id, Count: count})
	return merged, true
}

func (r *memoryItemRepository) Reset() {
	fresh := r.seed.Items()

	r.mu.Lock()
	r.items = fresh
	count := len(r.items)
	r.mu.Unlock()

	r.listeners.publish(Event{Type: EventItemsReset, Count: count})
}

func (r *memoryItemRepository) Subscribe(fn Listener) func() {
	return r.listeners.add(fn)
}

// indexOf expects the caller to hold the lock.
func (r *memoryItemRepository) indexOf(id int) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
