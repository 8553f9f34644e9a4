package clicker

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*Game, *engine.TestHost, *store.Store, *store.Memory, *audio.Recorder) {
	t.Helper()
	mem := store.NewMemory()
	st := store.New(mem)
	cues := &audio.Recorder{}
	g := New(engine.Services{Store: st, Cues: cues, Seed: 3})
	return g, engine.NewTestHost(80, 30), st, mem, cues
}

func TestGame_MountLoadsSavedState(t *testing.T) {
	g, host, st, _, _ := newTestGame(t)
	st.Set(constants.KeyClickerState, State{Bits: 40, Total: 300, UpgradeLevels: Levels{Core: 2, Drip: 1}})

	g.Mount(host)
	s := g.State()
	assert.Equal(t, 40.0, s.Bits)
	assert.Equal(t, 300.0, s.Total)
	assert.Equal(t, 3, s.BitsPerClick)
	assert.Equal(t, 1, s.BitsPerSecond)
	assert.True(t, host.Screen.Contains("HACK"))
}

func TestGame_CorruptRecordFallsBack(t *testing.T) {
	g, host, _, mem, _ := newTestGame(t)
	mem.Put(constants.KeyClickerState, "{not json")

	g.Mount(host)
	assert.Equal(t, DefaultState(), g.State())
}

func TestGame_ClickPersists(t *testing.T) {
	g, host, st, _, cues := newTestGame(t)
	g.Mount(host)

	require.True(t, host.Key(tcell.KeyRune, ' '))
	require.True(t, host.Key(tcell.KeyEnter, 0))

	saved := store.Get(st, constants.KeyClickerState, DefaultState())
	assert.Equal(t, g.State(), saved)
	assert.GreaterOrEqual(t, saved.Bits, 2.0)
	assert.Equal(t, 2, cues.Count(audio.CueClick)+cues.Count(audio.CueCrit))
}

func TestGame_BuyByKey(t *testing.T) {
	g, host, st, _, cues := newTestGame(t)
	st.Set(constants.KeyClickerState, State{Bits: 25, Total: 25})
	g.Mount(host)

	assert.True(t, host.Key(tcell.KeyRune, '1'))
	s := g.State()
	assert.Equal(t, 0.0, s.Bits)
	assert.Equal(t, 2, s.BitsPerClick)
	assert.Equal(t, 1, s.UpgradeLevels.Core)
	assert.Equal(t, 1, cues.Count(audio.CuePurchase))

	saved := store.Get(st, constants.KeyClickerState, DefaultState())
	assert.Equal(t, 1, saved.UpgradeLevels.Core)

	// Unaffordable purchase is silent and leaves state alone
	host.Key(tcell.KeyRune, '2')
	assert.Equal(t, 0, g.State().UpgradeLevels.Drip)
	assert.Equal(t, 1, cues.Count(audio.CuePurchase))
}

func TestGame_MouseHitsButtonAndShop(t *testing.T) {
	g, host, st, _, _ := newTestGame(t)
	st.Set(constants.KeyClickerState, State{Bits: 60, Total: 60})
	g.Mount(host)

	b := g.layout.button
	host.Send(tcell.NewEventMouse(b.X+1, b.Y+1, tcell.Button1, tcell.ModNone))
	assert.Greater(t, g.State().Bits, 60.0)
	host.Send(tcell.NewEventMouse(b.X+1, b.Y+1, tcell.ButtonNone, tcell.ModNone))

	drip := g.layout.rows[1]
	host.Send(tcell.NewEventMouse(drip.X, drip.Y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 1, g.State().UpgradeLevels.Drip)
}

func TestGame_HeldPressActivatesOnce(t *testing.T) {
	g, host, st, _, cues := newTestGame(t)
	st.Set(constants.KeyClickerState, State{Bits: 1000, Total: 1000})
	g.Mount(host)

	core := g.layout.rows[0]
	assert.True(t, host.Send(tcell.NewEventMouse(core.X, core.Y, tcell.Button1, tcell.ModNone)))
	assert.True(t, host.Send(tcell.NewEventMouse(core.X+1, core.Y, tcell.Button1, tcell.ModNone)))
	assert.True(t, host.Send(tcell.NewEventMouse(core.X+2, core.Y, tcell.Button1, tcell.ModNone)))
	host.Send(tcell.NewEventMouse(core.X+2, core.Y, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 1, g.State().UpgradeLevels.Core)
	assert.Equal(t, 1, cues.Count(audio.CuePurchase))

	b := g.layout.button
	for i := 0; i < 5; i++ {
		host.Send(tcell.NewEventMouse(b.X+1, b.Y+1, tcell.Button1, tcell.ModNone))
	}
	host.Send(tcell.NewEventMouse(b.X+1, b.Y+1, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 1, cues.Count(audio.CueClick)+cues.Count(audio.CueCrit))

	// A new press after release counts again
	host.Send(tcell.NewEventMouse(b.X+1, b.Y+1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 2, cues.Count(audio.CueClick)+cues.Count(audio.CueCrit))
}

func TestGame_ZeroDripDoesNotPersist(t *testing.T) {
	g, host, _, mem, _ := newTestGame(t)
	g.Mount(host)

	for i := 0; i < 50; i++ {
		host.Step(20 * time.Millisecond)
	}
	_, written := mem.Raw(constants.KeyClickerState)
	assert.False(t, written, "idle discharge with no drip wrote the record")
	assert.Equal(t, 0.0, g.State().Bits)
}

func TestGame_PassiveIncomeAndPause(t *testing.T) {
	g, host, st, _, _ := newTestGame(t)
	st.Set(constants.KeyClickerState, State{UpgradeLevels: Levels{Drip: 2}})
	g.Mount(host)

	for i := 0; i < 100; i++ {
		host.Step(10 * time.Millisecond)
	}
	assert.InDelta(t, 2.0, g.State().Bits, 1e-9)
	assert.InDelta(t, 2.0, store.Get(st, constants.KeyClickerState, DefaultState()).Bits, 1e-9)

	require.True(t, g.TogglePause())
	for i := 0; i < 100; i++ {
		host.Step(10 * time.Millisecond)
	}
	assert.InDelta(t, 2.0, g.State().Bits, 1e-9, "income accrued while paused")
	assert.True(t, host.Screen.Contains("PAUSED"))

	require.False(t, g.TogglePause())
	host.Step(10 * time.Millisecond)
	for i := 0; i < 20; i++ {
		host.Step(10 * time.Millisecond)
	}
	assert.InDelta(t, 2.4, g.State().Bits, 1e-9)
}

func TestGame_RestartWipesProgress(t *testing.T) {
	g, host, st, _, _ := newTestGame(t)
	st.Set(constants.KeyClickerState, State{Bits: 500, Total: 900, UpgradeLevels: Levels{Core: 4}})
	g.Mount(host)

	g.Restart()
	assert.Equal(t, DefaultState(), g.State())
	assert.Equal(t, DefaultState(), store.Get(st, constants.KeyClickerState, State{Bits: -1}))
	assert.Equal(t, 1, host.Frames.Pending())
}

func TestGame_Lifecycle(t *testing.T) {
	g, host, _, _, _ := newTestGame(t)

	g.Restart()
	g.Click()
	assert.False(t, g.Buy(constants.UpgradeCore))
	assert.False(t, g.TogglePause())
	g.Unmount()

	g.Mount(host)
	assert.True(t, host.Listening())
	g.Unmount()
	g.Unmount()
	assert.False(t, host.Listening())
	assert.Equal(t, 0, host.Frames.Pending())
	assert.False(t, host.Screen.Contains("HACK"))
}

func TestGame_Badge(t *testing.T) {
	g, _, st, _, _ := newTestGame(t)
	assert.Equal(t, 0.0, g.Badge(st))
	st.Set(constants.KeyClickerState, State{Bits: 5, Total: 1234})
	assert.Equal(t, 1234.0, g.Badge(st))
}
