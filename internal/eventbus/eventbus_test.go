package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New()
	ch := make(chan DomainEvent, 1)
	bus.Subscribe(EventTermsLoaded, func(e DomainEvent) { ch <- e })

	bus.Publish(TermsLoadedEvent{Terms: []string{"kettle"}})

	select {
	case e := <-ch:
		loaded, ok := e.(TermsLoadedEvent)
		require.True(t, ok)
		assert.Equal(t, []string{"kettle"}, loaded.Terms)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber never received event")
	}
}

func TestPublishOnlyReachesMatchingType(t *testing.T) {
	bus := New()
	ch := make(chan DomainEvent, 1)
	bus.Subscribe(EventScrapeStarted, func(e DomainEvent) { ch <- e })

	bus.Publish(TermsLoadedEvent{})

	select {
	case <-ch:
		t.Fatal("handler received event of the wrong type")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	bus := New()
	bus.Subscribe(EventError, func(DomainEvent) { panic("handler bug") })

	ch := make(chan DomainEvent, 1)
	bus.Subscribe(EventError, func(e DomainEvent) { ch <- e })

	bus.Publish(ErrorEvent{Message: "x"})

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch stopped after handler panic")
	}
}
