package store

import (
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

const subscriberBuffer = 16

type notifier struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]chan models.ChangeEvent
}

// NewNotifier returns an in-process [Notifier].
func NewNotifier() Notifier {
	return &notifier{subscribers: make(map[int]chan models.ChangeEvent)}
}

// Publish delivers event to every subscriber whose buffer has room.
func (n *notifier) Publish(event models.ChangeEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers a subscriber. The returned func unsubscribes and
// closes the channel; calling it more than once is safe.
func (n *notifier) Subscribe() (<-chan models.ChangeEvent, func()) {
	ch := make(chan models.ChangeEvent, subscriberBuffer)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subscribers[id] = ch
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subscribers, id)
			n.mu.Unlock()
			close(ch)
		})
	}
}
