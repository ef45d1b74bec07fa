package repository

import "sync"

type EventType string

const (
	EventItemCreated EventType = "item.created"
	EventItemUpdated EventType = "item.updated"
	EventItemRemoved EventType = "item.removed"
	EventItemsReset  EventType = "items.reset"
)

// Event describes one effective mutation. ItemID is zero for resets.
type Event struct {
	Type   EventType `json:"type"`
	ItemID int       `json:"item_id,omitempty"`
	Count  int       `json:"count"`
}

// Listener is called synchronously after a mutation, outside the store lock.
type Listener func(Event)

type listeners struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]Listener
	order  []int
}

func (l *listeners) add(fn Listener) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.byID == nil {
		l.byID = make(map[int]Listener)
	}
	l.nextID++
	id := l.nextID
	l.byID[id] = fn
	l.order = append(l.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *listeners) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.byID, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *listeners) snapshot() []Listener {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Listener, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out
}

func (l *listeners) publish(ev Event) {
	for _, fn := range l.snapshot() {
		fn(ev)
	}
}
