// Package events dispatches domain events to in-process subscribers after the
// change that produced them has been committed.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"partnerup/internal/domain"
)

type Event interface {
	Type() domain.EventType
}

type Handler func(ctx context.Context, evt Event) error

// Bus delivers events synchronously, in subscription order, on the
// publisher's goroutine.
type Bus interface {
	Subscribe(eventType domain.EventType, handler Handler)
	Publish(ctx context.Context, evt Event) error
	HasSubscribers(eventType domain.EventType) bool
}

type bus struct {
	mu       sync.RWMutex
	handlers map[domain.EventType][]Handler
}

func NewBus() Bus {
	return &bus{handlers: make(map[domain.EventType][]Handler)}
}

func (b *bus) Subscribe(eventType domain.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish runs every handler even when an earlier one fails and returns the
// joined handler errors.
func (b *bus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[evt.Type()]...)
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s handler: %w", evt.Type(), err))
		}
	}
	return errors.Join(errs...)
}

func (b *bus) HasSubscribers(eventType domain.EventType) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType]) > 0
}
