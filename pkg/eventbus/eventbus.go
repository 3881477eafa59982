package eventbus

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Event is anything published on the bus.
type Event interface {
	Name() string
}

// Listener handles one event. A returned error is logged and does not stop
// the remaining listeners.
type Listener func(ctx context.Context, event Event) error

type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish calls every listener of the event in subscription order before it
// returns. Listeners run outside the bus lock, so they may publish or subscribe.
func (b *Bus) Publish(ctx context.Context, event Event) {
	eventName := event.Name()

	b.mu.RLock()
	listeners := slices.Clone(b.listeners[eventName])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener(ctx, event); err != nil {
			b.logger.Error("event listener failed",
				zap.String("event", eventName),
				zap.Error(err),
			)
		}
	}
}
