package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerup/internal/domain"
)

func TestBus_Publish(t *testing.T) {
	ctx := context.Background()
	evt := domain.ApplicationStatusChanged{ApplicationID: uuid.New(), NewStatus: domain.ApplicationAccepted}

	t.Run("delivers to subscribers in order", func(t *testing.T) {
		b := NewBus()
		var calls []string
		b.Subscribe(domain.EventApplicationStatusChanged, func(ctx context.Context, e Event) error {
			calls = append(calls, "first")
			got, ok := e.(domain.ApplicationStatusChanged)
			require.True(t, ok)
			assert.Equal(t, evt.ApplicationID, got.ApplicationID)
			return nil
		})
		b.Subscribe(domain.EventApplicationStatusChanged, func(ctx context.Context, e Event) error {
			calls = append(calls, "second")
			return nil
		})

		require.NoError(t, b.Publish(ctx, evt))
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("no subscribers is not an error", func(t *testing.T) {
		b := NewBus()
		assert.False(t, b.HasSubscribers(domain.EventApplicationStatusChanged))
		assert.NoError(t, b.Publish(ctx, evt))
	})

	t.Run("a failing handler does not stop the others", func(t *testing.T) {
		b := NewBus()
		boom := errors.New("boom")
		secondCalled := false
		b.Subscribe(domain.EventApplicationStatusChanged, func(ctx context.Context, e Event) error {
			return boom
		})
		b.Subscribe(domain.EventApplicationStatusChanged, func(ctx context.Context, e Event) error {
			secondCalled = true
			return nil
		})

		err := b.Publish(ctx, evt)

		assert.ErrorIs(t, err, boom)
		assert.True(t, secondCalled)
		assert.True(t, b.HasSubscribers(domain.EventApplicationStatusChanged))
	})

	t.Run("concurrent subscribe and publish", func(t *testing.T) {
		b := NewBus()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				b.Subscribe(domain.EventApplicationStatusChanged, func(ctx context.Context, e Event) error { return nil })
			}()
			go func() {
				defer wg.Done()
				_ = b.Publish(ctx, evt)
			}()
		}
		wg.Wait()
		assert.True(t, b.HasSubscribers(domain.EventApplicationStatusChanged))
	})
}
