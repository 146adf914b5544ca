package drawer

import "sync"

// SettleEvent is posted when the settled openness of the drawer changes.
type SettleEvent struct {
	Open bool
}

// Mailbox carries settle events from the animation side to the host. Post
// never blocks and never drops; the host waits on Ready and calls Drain.
type Mailbox struct {
	mu     sync.Mutex
	queue  []SettleEvent
	ready  chan struct{}
	closed bool
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ready: make(chan struct{}, 1)}
}

// Post enqueues ev and signals Ready.
func (m *Mailbox) Post(ev SettleEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.queue = append(m.queue, ev)
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Ready is signalled after a Post. It is closed by Close.
func (m *Mailbox) Ready() <-chan struct{} {
	return m.ready
}

// Drain returns all queued events in posting order.
func (m *Mailbox) Drain() []SettleEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.queue
	m.queue = nil
	return out
}

// Close stops accepting events and releases waiters.
func (m *Mailbox) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.ready)
}
