package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Bus routes published events to topic subscribers through one dispatch
// goroutine, so handlers never run concurrently with each other and see
// events in publish order. Publish never blocks: when the queue is full the
// event is dropped and logged, the same way a browser drops coalesced
// scroll events rather than stalling the page.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
	queue    chan Event
	log      *zap.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// NewBus creates a router with the given queue capacity.
func NewBus(log *zap.Logger, buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}
	return &Bus{
		handlers: make(map[Topic][]Handler),
		queue:    make(chan Event, buffer),
		log:      log,
		done:     make(chan struct{}),
	}
}

// Subscribe registers a handler for a topic. Registration order is delivery
// order within a topic.
func (b *Bus) Subscribe(topic Topic, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish enqueues an event for dispatch. Returns false when the event was
// dropped (queue full or bus stopped).
func (b *Bus) Publish(e Event) bool {
	select {
	case <-b.done:
		return false
	default:
	}

	select {
	case b.queue <- e:
		return true
	default:
		b.log.Warn("event queue full, dropping event", zap.String("topic", string(e.Topic)))
		return false
	}
}

// Run dispatches events until the context is cancelled or Close is called.
// It owns the only goroutine that invokes handlers.
func (b *Bus) Run(ctx context.Context) {
	b.startOnce.Do(func() {
		go func() {
			for {
				select {
				case <-ctx.Done():
					b.Close()
					return
				case <-b.done:
					return
				case e := <-b.queue:
					b.dispatch(e)
				}
			}
		}()
	})
}

// Close stops dispatching. Idempotent.
func (b *Bus) Close() {
	b.stopOnce.Do(func() { close(b.done) })
}

func (b *Bus) dispatch(e Event) {
	b.mu.RLock()
	hs := b.handlers[e.Topic]
	b.mu.RUnlock()

	for _, h := range hs {
		b.invoke(e, h)
	}
}

// invoke isolates handler panics: one broken feature must not take the
// dispatch loop down with it.
func (b *Bus) invoke(e Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked",
				zap.String("topic", string(e.Topic)),
				zap.Any("panic", r),
			)
		}
	}()
	h(e)
}
