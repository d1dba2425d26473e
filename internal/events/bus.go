package events

import (
	"context"
	"fmt"
	"sync"
)

type Event interface {
	Name() string
}

type Handler func(ctx context.Context, ev Event) error

// Bus delivers events synchronously, in subscription order, on the
// publisher's goroutine. Handlers therefore run inside whatever transaction
// the publisher's ctx carries, and a handler error aborts that transaction.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

func (b *Bus) Publish(ctx context.Context, ev Event) error {
	if b == nil {
		return nil
	}

	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[ev.Name()]...)
	b.mu.RUnlock()

	for _, h := range hs {
		if err := h(ctx, ev); err != nil {
			return fmt.Errorf("handle %s: %w", ev.Name(), err)
		}
	}
	return nil
}
