package runner

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/store"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T) (*Game, *engine.TestHost, *store.Store, *audio.Recorder) {
	t.Helper()
	st := store.New(store.NewMemory())
	cues := &audio.Recorder{}
	g := New(engine.Services{Store: st, Cues: cues, Seed: 42})
	host := engine.NewTestHost(60, 30)
	return g, host, st, cues
}

func crash(host *engine.TestHost, g *Game) {
	s := g.Session()
	s.Place(Obstacle{Lane: s.PlayerLane, Y: PlayerTop(), H: 20})
	host.Step(frame)
}

func TestGame_GameOverPersistsBest(t *testing.T) {
	g, host, st, cues := newTestGame(t)
	st.Set(constants.KeyBestRunner, 10)

	g.Mount(host)
	g.Session().Score = 250.4
	crash(host, g)

	if g.Session().Alive {
		t.Fatal("expected crash")
	}
	want := int(math.Floor(g.Session().Score))
	if got := store.Get(st, constants.KeyBestRunner, 0); got != want {
		t.Errorf("stored best = %d, want %d", got, want)
	}
	if cues.Count(audio.CueCrash) != 1 {
		t.Errorf("crash cue played %d times", cues.Count(audio.CueCrash))
	}
	if !host.Screen.Contains("CRASHED") {
		t.Error("crash overlay not rendered")
	}
}

func TestGame_BestIsMaxOfSessions(t *testing.T) {
	g, host, st, _ := newTestGame(t)
	g.Mount(host)

	want := 0
	for _, score := range []float64{120.2, 400.9, 33, 399.99, 0} {
		g.Restart()
		g.Session().Score = score
		crash(host, g)
		want = max(want, int(math.Floor(g.Session().Score)))
	}

	if got := store.Get(st, constants.KeyBestRunner, 0); got != want {
		t.Errorf("stored best = %d, want %d", got, want)
	}
	if g.Best() != want {
		t.Errorf("engine best = %d, want %d", g.Best(), want)
	}
}

func TestGame_LowerScoreKeepsStoredBest(t *testing.T) {
	g, host, st, _ := newTestGame(t)
	st.Set(constants.KeyBestRunner, 9000)
	g.Mount(host)
	crash(host, g)

	if got := store.Get(st, constants.KeyBestRunner, 0); got != 9000 {
		t.Errorf("best lowered to %d", got)
	}
}

func TestGame_LifecycleAndPause(t *testing.T) {
	g, host, _, _ := newTestGame(t)

	// Unmounted controls are no-ops
	g.Restart()
	if g.TogglePause() {
		t.Error("TogglePause on unmounted game returned true")
	}
	g.Unmount()

	g.Mount(host)
	if !host.Listening() || host.Frames.Pending() != 1 {
		t.Fatal("mount did not attach input and frame clock")
	}

	host.Step(frame)
	dist := g.Session().Distance
	if !g.TogglePause() {
		t.Fatal("expected paused")
	}
	host.Step(frame)
	if g.Session().Distance != dist {
		t.Error("simulation advanced while paused")
	}
	if !host.Screen.Contains("PAUSED") {
		t.Error("pause overlay not rendered while paused")
	}
	if g.TogglePause() {
		t.Fatal("expected resumed")
	}

	g.Unmount()
	g.Unmount()
	if host.Listening() || host.Frames.Pending() != 0 {
		t.Error("unmount left listeners or frames behind")
	}
	if host.Screen.Contains("SCORE") {
		t.Error("unmount left content on the canvas")
	}
}

func TestGame_KeyboardInput(t *testing.T) {
	g, host, _, cues := newTestGame(t)
	g.Mount(host)

	host.Key(tcell.KeyLeft, 0)
	if g.Session().PlayerLane != 0 {
		t.Errorf("lane = %d after left", g.Session().PlayerLane)
	}
	host.Key(tcell.KeyLeft, 0)
	host.Key(tcell.KeyRune, 'd')
	host.Key(tcell.KeyRune, 'l')
	host.Key(tcell.KeyRune, 'l')
	if g.Session().PlayerLane != 2 {
		t.Errorf("lane = %d after rights", g.Session().PlayerLane)
	}
	if cues.Count(audio.CueMove) != 3 {
		t.Errorf("move cue played %d times, want 3", cues.Count(audio.CueMove))
	}

	if host.Key(tcell.KeyEnter, 0) {
		t.Error("Enter consumed while alive")
	}
	crash(host, g)
	host.Key(tcell.KeyLeft, 0)
	if g.Session().PlayerLane != 2 {
		t.Error("input accepted after death")
	}
	if !host.Key(tcell.KeyEnter, 0) || !g.Session().Alive {
		t.Error("Enter did not restart after death")
	}
}

func TestGame_RestartResetsSession(t *testing.T) {
	g, host, _, _ := newTestGame(t)
	g.Mount(host)
	for i := 0; i < 10; i++ {
		host.Step(50 * time.Millisecond)
	}
	g.TogglePause()
	g.Restart()

	s := g.Session()
	if s.Distance != 0 || s.Score != 0 || s.Speed != 110 || len(s.Obstacles) != 0 || s.Paused || !s.Alive {
		t.Errorf("restart left state %+v", s)
	}
	if host.Frames.Pending() != 1 {
		t.Error("restart must keep the frame clock subscription")
	}
}

func TestGame_MouseSwipe(t *testing.T) {
	g, host, _, _ := newTestGame(t)
	g.Mount(host)

	// 60 columns map to 360 units: 10 columns is 60 units
	host.Send(tcell.NewEventMouse(30, 20, tcell.Button1, tcell.ModNone))
	host.Send(tcell.NewEventMouse(40, 20, tcell.ButtonNone, tcell.ModNone))
	if g.Session().PlayerLane != 2 {
		t.Errorf("lane = %d after right swipe", g.Session().PlayerLane)
	}

	host.Send(tcell.NewEventMouse(30, 20, tcell.Button1, tcell.ModNone))
	host.Send(tcell.NewEventMouse(29, 20, tcell.ButtonNone, tcell.ModNone))
	if g.Session().PlayerLane != 2 {
		t.Error("short drag shifted lanes")
	}
}

func TestGame_BadgeReadsStore(t *testing.T) {
	g, _, st, _ := newTestGame(t)
	if g.Badge(st) != 0 {
		t.Error("badge should default to 0")
	}
	st.Set(constants.KeyBestRunner, 77)
	if g.Badge(st) != 77 {
		t.Errorf("badge = %v, want 77", g.Badge(st))
	}
}
