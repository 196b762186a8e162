package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.SubscribeFunc(ScoreChanged, func(e Event) { got = append(got, "a") })
	d.SubscribeFunc(ScoreChanged, func(e Event) { got = append(got, "b") })
	d.SubscribeFunc(GameOver, func(e Event) { got = append(got, "other") })

	d.Dispatch(Event{Type: ScoreChanged, Data: 10})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.SubscribeFunc(GameOver, func(e Event) {
		calls++
		d.SubscribeFunc(GameOver, func(e Event) { calls += 10 })
	})

	d.Dispatch(Event{Type: GameOver})
	assert.Equal(t, 1, calls)

	d.Dispatch(Event{Type: GameOver})
	assert.Equal(t, 12, calls)
}
