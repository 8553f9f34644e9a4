// Package runner implements Byte Runner, a three-lane endless dodge.
package runner

import (
	"log"
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/store"
)

// Game is the Byte Runner engine
type Game struct {
	svc     engine.Services
	rng     *rand.Rand
	session *Session
	best    int

	host        engine.Host
	clock       engine.FrameClock
	cancelInput func()
	swipe       Swipe
	sessionID   uuid.UUID
}

// New creates an unmounted runner
func New(svc engine.Services) *Game {
	svc = svc.WithDefaults()
	g := &Game{svc: svc, rng: svc.Rand(1)}
	g.session = NewSession(g.rng)
	g.clock = engine.FrameClock{
		Update:  g.update,
		Render:  g.render,
		Advance: g.session.Running,
	}
	return g
}

func (g *Game) Info() engine.Info {
	return engine.Info{
		ID:         constants.GameRunner,
		Title:      "Byte Runner",
		Subtitle:   "Dodge falling packets across three lanes",
		BadgeLabel: "best",
	}
}

// Badge returns the stored best score
func (g *Game) Badge(s *store.Store) float64 {
	return float64(store.Get(s, constants.KeyBestRunner, 0))
}

// Session exposes the live simulation state
func (g *Game) Session() *Session {
	return g.session
}

// Best returns the best score known to this engine
func (g *Game) Best() int {
	return g.best
}

func (g *Game) Mount(h engine.Host) {
	if g.host != nil {
		g.Unmount()
	}
	g.host = h
	g.best = store.Get(g.svc.Store, constants.KeyBestRunner, 0)
	g.newSession()
	g.cancelInput = h.Listen(g.handleEvent)
	g.clock.Start(h.Display())
	g.render()
	log.Printf("runner: mounted session=%s best=%d", g.sessionID, g.best)
}

func (g *Game) Unmount() {
	if g.host == nil {
		return
	}
	g.clock.Stop()
	if g.cancelInput != nil {
		g.cancelInput()
		g.cancelInput = nil
	}
	g.host.Canvas().Clear()
	g.host = nil
	log.Printf("runner: unmounted session=%s", g.sessionID)
}

func (g *Game) Restart() {
	if g.host == nil {
		return
	}
	g.newSession()
	g.update(0)
	g.render()
}

func (g *Game) TogglePause() bool {
	if g.host == nil {
		return false
	}
	g.session.Paused = !g.session.Paused
	g.render()
	return g.session.Paused
}

func (g *Game) newSession() {
	g.session.Reset()
	g.swipe = Swipe{}
	g.sessionID = uuid.New()
}

func (g *Game) update(dt float64) {
	if !g.session.Update(dt) {
		return
	}
	score := int(math.Floor(g.session.Score))
	g.best = store.RaiseBest(g.svc.Store, constants.KeyBestRunner, score)
	g.svc.Status.Badge(constants.GameRunner).Raise(float64(g.best))
	g.svc.Cues.Play(audio.CueCrash)
	log.Printf("runner: crash session=%s score=%d distance=%.0f best=%d",
		g.sessionID, score, g.session.Distance, g.best)
}

func (g *Game) shift(dir int) bool {
	if !g.session.Shift(dir) {
		return false
	}
	g.svc.Cues.Play(audio.CueMove)
	return true
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		return g.handleMouse(ev)
	}
	return false
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		g.shift(-1)
		return true
	case tcell.KeyRight:
		g.shift(1)
		return true
	case tcell.KeyEnter:
		return g.retry()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			g.shift(-1)
			return true
		case 'd', 'l':
			g.shift(1)
			return true
		case ' ':
			return g.retry()
		}
	}
	return false
}

func (g *Game) retry() bool {
	if g.session.Alive {
		return false
	}
	g.Restart()
	return true
}

// handleMouse tracks a left-button press through release as a swipe
func (g *Game) handleMouse(ev *tcell.EventMouse) bool {
	cx, cy := ev.Position()
	fx, fy := g.toField(cx, cy)

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !g.swipe.Active():
		g.swipe.Begin(fx, fy, ev.When())
		return true
	case !pressed && g.swipe.Active():
		if dir := g.swipe.End(fx, fy, ev.When()); dir != 0 {
			g.shift(dir)
		}
		return true
	}
	return false
}

// toField maps a canvas cell to field units
func (g *Game) toField(cx, cy int) (float64, float64) {
	w, h := g.host.Canvas().Size()
	rows := h - constants.HUDRows
	if w <= 0 || rows <= 0 {
		return 0, 0
	}
	fx := float64(cx) * constants.RunnerFieldWidth / float64(w)
	fy := float64(cy-constants.HUDRows) * constants.RunnerFieldHeight / float64(rows)
	return fx, fy
}
