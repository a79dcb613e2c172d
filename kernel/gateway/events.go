package gateway

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nmxmxh/conduit_v1/internal/core"
)

// UpgradeEvent is published exactly once per successful upgrade, letting
// observers track upgrade history without polling the module slot.
type UpgradeEvent struct {
	Module   core.Address
	Sequence uint64
	Time     time.Time
}

// Notifier fans upgrade events out to subscribers. Slow subscribers do not
// block an upgrade; events that cannot be buffered are counted as dropped.
type Notifier struct {
	mu      sync.Mutex
	subs    map[string]chan UpgradeEvent
	seq     atomic.Uint64
	dropped atomic.Uint64
}

// NewNotifier creates a notifier with no subscribers.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]chan UpgradeEvent)}
}

// Subscribe registers a buffered subscription and returns its id and channel.
func (n *Notifier) Subscribe(buffer int) (string, <-chan UpgradeEvent) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan UpgradeEvent, buffer)
	id := uuid.NewString()

	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscription and closes its channel.
func (n *Notifier) Unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if ch, ok := n.subs[id]; ok {
		delete(n.subs, id)
		close(ch)
	}
}

// Dropped returns the number of events lost to full subscriber buffers.
func (n *Notifier) Dropped() uint64 {
	return n.dropped.Load()
}

func (n *Notifier) publish(module core.Address) UpgradeEvent {
	ev := UpgradeEvent{
		Module:   module,
		Sequence: n.seq.Add(1),
		Time:     time.Now(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
			n.dropped.Add(1)
		}
	}
	return ev
}
