package react

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/store"
)

var padRunes = []rune{'1', '2', '3', '4'}

func newTestGame(t *testing.T) (*Game, *engine.TestHost, *store.Store, *audio.Recorder) {
	t.Helper()
	st := store.New(store.NewMemory())
	cues := &audio.Recorder{}
	g := New(engine.Services{Store: st, Cues: cues, Seed: 9})
	return g, engine.NewTestHost(60, 24), st, cues
}

func TestGame_StartAndHit(t *testing.T) {
	g, host, _, cues := newTestGame(t)
	g.Mount(host)

	if g.Session().Phase != Idle || !host.Screen.Contains("Enter to start") {
		t.Fatal("mount should land in Idle")
	}
	if host.Key(tcell.KeyRune, '1') {
		t.Error("pad input consumed while idle")
	}
	if !host.Key(tcell.KeyEnter, 0) || g.Session().Phase != Live {
		t.Fatal("Enter did not start")
	}

	for i := 0; i < 3; i++ {
		host.Step(100 * time.Millisecond)
		host.Key(tcell.KeyRune, padRunes[g.Session().Target])
	}
	if g.Session().Streak != 3 || g.Session().Phase != Live {
		t.Errorf("streak=%d phase=%v", g.Session().Streak, g.Session().Phase)
	}
	if cues.Count(audio.CueHit) != 3 {
		t.Errorf("hit cue played %d times", cues.Count(audio.CueHit))
	}
}

func TestGame_AlternateKeysAndMouse(t *testing.T) {
	g, host, _, _ := newTestGame(t)
	g.Mount(host)
	g.Start()

	alt := []rune{'a', 's', 'd', 'f'}
	host.Key(tcell.KeyRune, alt[g.Session().Target])
	if g.Session().Streak != 1 {
		t.Fatal("alternate key not mapped")
	}

	pad := g.pads[g.Session().Target]
	host.Send(tcell.NewEventMouse(pad.X+1, pad.Y+1, tcell.Button1, tcell.ModNone))
	if g.Session().Streak != 2 {
		t.Error("mouse pad click not mapped")
	}
}

func TestGame_HeldPressDoesNotFail(t *testing.T) {
	g, host, _, _ := newTestGame(t)
	g.Mount(host)
	g.Start()

	first := g.Session().Target
	pad := g.pads[first]
	host.Send(tcell.NewEventMouse(pad.X+1, pad.Y+1, tcell.Button1, tcell.ModNone))
	if g.Session().Streak != 1 {
		t.Fatalf("streak = %d after hit", g.Session().Streak)
	}

	// The held button drags across to a neighbouring pad
	other := g.pads[(first+1)%constants.ReactTargets]
	if !host.Send(tcell.NewEventMouse(other.X+1, other.Y+1, tcell.Button1, tcell.ModNone)) {
		t.Error("held drag report not consumed")
	}
	if g.Session().Phase != Live || g.Session().Outcome != OutcomeNone || g.Session().Streak != 1 {
		t.Fatalf("drag ended the run: phase=%v outcome=%v streak=%d",
			g.Session().Phase, g.Session().Outcome, g.Session().Streak)
	}

	host.Send(tcell.NewEventMouse(other.X+1, other.Y+1, tcell.ButtonNone, tcell.ModNone))
	next := g.pads[g.Session().Target]
	host.Send(tcell.NewEventMouse(next.X+1, next.Y+1, tcell.Button1, tcell.ModNone))
	if g.Session().Streak != 2 {
		t.Errorf("press after release not counted, streak = %d", g.Session().Streak)
	}
}

func TestGame_FailPersistsBest(t *testing.T) {
	g, host, st, cues := newTestGame(t)
	st.Set(constants.KeyBestReact, 1)
	g.Mount(host)
	g.Start()

	for i := 0; i < 4; i++ {
		g.Press(g.Session().Target)
	}
	g.Press((g.Session().Target + 1) % constants.ReactTargets)

	if g.Session().Outcome != OutcomeFail {
		t.Fatalf("outcome = %v", g.Session().Outcome)
	}
	if got := store.Get(st, constants.KeyBestReact, 0); got != 4 {
		t.Errorf("stored best = %d, want 4", got)
	}
	if cues.Count(audio.CueFail) != 1 {
		t.Errorf("fail cue played %d times", cues.Count(audio.CueFail))
	}
	if !host.Screen.Contains("WRONG PAD") {
		t.Error("fail outcome not rendered")
	}

	// A worse run keeps the best
	g.Start()
	g.Press((g.Session().Target + 1) % constants.ReactTargets)
	if got := store.Get(st, constants.KeyBestReact, 0); got != 4 {
		t.Errorf("stored best lowered to %d", got)
	}
}

func TestGame_TimeoutThroughFrames(t *testing.T) {
	g, host, st, _ := newTestGame(t)
	g.Mount(host)
	g.Start()
	g.Press(g.Session().Target)

	// Frame steps are clamped to 50ms, so a long stall cannot expire the window at once
	host.Step(10 * time.Second)
	if g.Session().Phase != Live {
		t.Fatal("single stalled frame expired the window")
	}
	for i := 0; i < 40 && g.Session().Phase == Live; i++ {
		host.Step(50 * time.Millisecond)
	}
	if g.Session().Outcome != OutcomeTimeout {
		t.Fatalf("outcome = %v, want timeout", g.Session().Outcome)
	}
	if got := store.Get(st, constants.KeyBestReact, 0); got != 1 {
		t.Errorf("stored best = %d, want 1", got)
	}
	if host.Frames.Pending() != 1 {
		t.Error("frame clock should keep rendering after the run ends")
	}
}

func TestGame_PauseAndRestart(t *testing.T) {
	g, host, _, _ := newTestGame(t)
	g.Mount(host)
	g.Start()
	g.Press(g.Session().Target)

	if !g.TogglePause() {
		t.Fatal("expected paused")
	}
	for i := 0; i < 100; i++ {
		host.Step(50 * time.Millisecond)
	}
	if g.Session().Phase != Live || g.Session().Elapsed != 0 {
		t.Error("timer ran while paused")
	}
	if !host.Screen.Contains("PAUSED") {
		t.Error("pause overlay missing")
	}

	g.Restart()
	if g.Session().Phase != Idle || g.Session().Streak != 0 || g.Session().Paused {
		t.Errorf("restart left %+v", g.Session())
	}
}

func TestGame_UnmountedIsInert(t *testing.T) {
	g, host, _, _ := newTestGame(t)
	g.Restart()
	g.Start()
	if g.TogglePause() || g.Session().Phase != Idle {
		t.Error("unmounted game reacted to controls")
	}

	g.Mount(host)
	g.Unmount()
	g.Unmount()
	if host.Listening() || host.Frames.Pending() != 0 {
		t.Error("unmount left subscriptions")
	}
}

func TestGame_Badge(t *testing.T) {
	g, _, st, _ := newTestGame(t)
	st.Set(constants.KeyBestReact, 12)
	if g.Badge(st) != 12 {
		t.Errorf("badge = %v", g.Badge(st))
	}
}
