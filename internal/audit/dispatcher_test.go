package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
}

func (s *memorySink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zap.NewNop())

	id := uint(4)
	d.Dispatch(Event{Action: "appointment_created", Entity: "appointment", EntityID: &id})
	d.Dispatch(Event{Action: "appointment_cancelled", Entity: "appointment", EntityID: &id})
	d.Close()
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, "appointment_created", sink.events[0].Action)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}
