package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventTaskStatusChanged, func(_ context.Context, e Event) error {
		seen = append(seen, "first:"+e.TaskID)
		return nil
	})
	d.Subscribe(EventTaskStatusChanged, func(_ context.Context, e Event) error {
		seen = append(seen, "second:"+e.TaskID)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTaskStatusChanged, TaskID: "task-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:task-1", "second:task-1"}, seen)
}

func TestDispatcherFailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var called bool
	d.Subscribe(EventAccountLocked, func(context.Context, Event) error {
		return errors.New("handler down")
	})
	d.Subscribe(EventAccountLocked, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventAccountLocked})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventLoginFailed}))
}
