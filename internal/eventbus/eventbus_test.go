package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()

	var mu sync.Mutex
	var got []string
	b.Subscribe(EventQueryChanged, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(QueryChangedEvent).Query)
	})

	b.Publish(QueryChangedEvent{Query: "a"})
	b.Publish(QueryChangedEvent{Query: "ab"})
	b.Publish(QueryChangedEvent{Query: "abc"})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "ab", "abc"}, got)
}

func TestUnsubscribe(t *testing.T) {
	b := New()

	var mu sync.Mutex
	calls := 0
	unsubscribe := b.Subscribe(EventFilterCleared, func(DomainEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	unsubscribe()

	b.Publish(FilterClearedEvent{})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()

	done := make(chan string, 1)
	b.Subscribe(EventError, func(DomainEvent) {
		panic("boom")
	})
	b.Subscribe(EventAssetCreated, func(e DomainEvent) {
		done <- e.(AssetCreatedEvent).Path
	})

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(AssetCreatedEvent{Path: "Assets/Enemy.asset"})
	b.Close()

	require.Len(t, done, 1)
	assert.Equal(t, "Assets/Enemy.asset", <-done)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()
	b.Close()

	assert.NotPanics(t, func() {
		b.Publish(CatalogBuiltEvent{Count: 1})
	})
}
