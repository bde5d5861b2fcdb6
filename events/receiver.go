package events

import (
	"context"
	"sync"
)

// Receiver fans walk events out to its listeners.
type Receiver struct {
	mu        sync.Mutex
	closed    bool
	listeners []chan Event
}

func New() *Receiver {
	return &Receiver{}
}

// Listen registers a new listener. The channel is closed by Close, or
// immediately when the receiver is already closed.
func (er *Receiver) Listen() <-chan Event {
	er.mu.Lock()
	defer er.mu.Unlock()

	ch := make(chan Event)
	if er.closed {
		close(ch)
		return ch
	}
	er.listeners = append(er.listeners, ch)
	return ch
}

// Send blocks until every listener has received the event or ctx is done,
// in which case it returns ctx.Err() and the remaining listeners miss the
// event. Events sent after Close are dropped.
func (er *Receiver) Send(ctx context.Context, event Event) error {
	er.mu.Lock()
	listeners := er.listeners
	er.mu.Unlock()

	for _, ch := range listeners {
		select {
		case ch <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close closes every listener. Senders must be done before Close is called;
// closing twice is harmless.
func (er *Receiver) Close() {
	er.mu.Lock()
	defer er.mu.Unlock()

	if er.closed {
		return
	}
	er.closed = true
	for _, ch := range er.listeners {
		close(ch)
	}
	er.listeners = nil
}
