package eventbus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiqsoft/routecore/pkg/eventbus"
)

type unitCreated struct {
	ID int64
}

func TestPublish_DispatchesByArgumentType(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())

	var got []int64
	bus.Subscribe(func(e unitCreated) {
		got = append(got, e.ID)
	})
	bus.Subscribe(func(s string) {
		t.Fatal("string handler must not fire for unitCreated")
	})

	bus.Publish(unitCreated{ID: 42})

	require.Len(t, got, 1)
	assert.Equal(t, int64(42), got[0])
}

func TestPublish_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())

	calls := 0
	bus.Subscribe(func(e unitCreated) { panic("boom") })
	bus.Subscribe(func(e unitCreated) { calls++ })

	bus.Publish(unitCreated{ID: 1})

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeAndClear(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())

	handler := func(e unitCreated) {}
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	assert.Equal(t, 0, bus.SubscribersCount())

	bus.Subscribe(handler)
	bus.Clear()
	assert.Equal(t, 0, bus.SubscribersCount())
}

func TestMatchSignature(t *testing.T) {
	assert.True(t, eventbus.MatchSignature(func(e unitCreated) {}, []interface{}{unitCreated{}}))
	assert.False(t, eventbus.MatchSignature(func(e unitCreated) {}, []interface{}{"nope"}))
	assert.False(t, eventbus.MatchSignature("not a func", []interface{}{unitCreated{}}))
	assert.False(t, eventbus.MatchSignature(func(a, b unitCreated) {}, []interface{}{unitCreated{}}))
}
