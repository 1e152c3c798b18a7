package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	d.Subscribe(EnemyKilled, kills)

	d.Emit(EnemyKilled, Kill{Killer: "player"})
	d.Emit(WaveCast, Cast{Caster: "bot"})

	require.Len(t, kills.got, 1)
	assert.Equal(t, Kill{Killer: "player"}, kills.got[0].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(BossDefeated, a)
	d.Subscribe(BossDefeated, b)

	d.Unsubscribe(BossDefeated, a)
	d.Emit(BossDefeated, Kill{})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)

	// Отписка незнакомого слушателя ничего не ломает
	d.Unsubscribe(BossSpawned, a)
	d.Unsubscribe(BossDefeated, a)
	d.Emit(BossDefeated, Kill{})
	assert.Len(t, b.got, 2)
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, ShakeRequested, FlashRequested)

	d.Emit(ShakeRequested, Shake{Intensity: 3})
	d.Emit(BannerShown, Banner{Text: "hi"})
	d.Emit(FlashRequested, Flash{Radius: 5})

	require.Len(t, r.got, 2)
	assert.Equal(t, ShakeRequested, r.got[0].Type)
	assert.Equal(t, FlashRequested, r.got[1].Type)
}

func TestDrainQueuesEveryEvent(t *testing.T) {
	d := NewDispatcher()
	assert.Zero(t, d.Pending())
	assert.Empty(t, d.Drain())

	d.Emit(ScoreTextShown, ScoreText{Amount: 5})
	d.Dispatch(Event{Type: EdgeUp, Data: Level{Edges: 5}})
	assert.Equal(t, 2, d.Pending())

	evs := d.Drain()
	require.Len(t, evs, 2)
	assert.Equal(t, ScoreTextShown, evs[0].Type)
	assert.Equal(t, EdgeUp, evs[1].Type)
	assert.Zero(t, d.Pending())
	assert.Empty(t, d.Drain())
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(PartCollected, ListenerFunc(func(e Event) {
		calls++
		assert.Equal(t, "player", e.Data.(Pickup).Collector)
	}))

	d.Emit(PartCollected, Pickup{Collector: "player"})
	assert.Equal(t, 1, calls)
}
