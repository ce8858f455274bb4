package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(BeamFired, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(BeamFired, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: BeamFired, Data: BeamData{Beam: 3}})
	d.Dispatch(Event{Type: BeamExpired})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, DamageApplied, EntityKilled)

	d.Dispatch(Event{Type: DamageApplied, Data: DamageData{Amount: 10}})
	d.Unsubscribe(DamageApplied, r)
	d.Dispatch(Event{Type: DamageApplied})
	d.Dispatch(Event{Type: EntityKilled, Data: KilledData{Entity: 2}})

	if assert.Len(t, r.got, 2) {
		assert.Equal(t, DamageData{Amount: 10}, r.got[0].Data)
		assert.Equal(t, EntityKilled, r.got[1].Type)
	}
}
