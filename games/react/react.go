// Package react implements Glitch React, a reaction timer over four pads
// whose response window shrinks with the streak.
package react

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/render"
	"github.com/lixenwraith/neon-arcade/store"
)

// padKeys maps runes to pad indices
var padKeys = map[rune]int{
	'1': 0, '2': 1, '3': 2, '4': 3,
	'a': 0, 's': 1, 'd': 2, 'f': 3,
}

// Game is the Glitch React engine
type Game struct {
	svc     engine.Services
	session *Session
	best    int

	host        engine.Host
	clock       engine.FrameClock
	cancelInput func()
	pointer     engine.PressEdge
	pads        []render.Rect
	sessionID   uuid.UUID
}

// New creates an unmounted react game
func New(svc engine.Services) *Game {
	svc = svc.WithDefaults()
	g := &Game{svc: svc, session: NewSession(svc.Rand(3))}
	g.clock = engine.FrameClock{
		Update:  g.update,
		Render:  g.render,
		Advance: g.session.Running,
	}
	return g
}

func (g *Game) Info() engine.Info {
	return engine.Info{
		ID:         constants.GameReact,
		Title:      "Glitch React",
		Subtitle:   "Hit the lit pad before the window closes",
		BadgeLabel: "best streak",
	}
}

// Badge returns the stored best streak
func (g *Game) Badge(s *store.Store) float64 {
	return float64(store.Get(s, constants.KeyBestReact, 0))
}

// Session exposes the live session
func (g *Game) Session() *Session {
	return g.session
}

// Best returns the best streak known to this engine
func (g *Game) Best() int {
	return g.best
}

func (g *Game) Mount(h engine.Host) {
	if g.host != nil {
		g.Unmount()
	}
	g.host = h
	g.best = store.Get(g.svc.Store, constants.KeyBestReact, 0)
	g.session.Reset()
	g.pointer.Reset()
	g.sessionID = uuid.New()
	g.cancelInput = h.Listen(g.handleEvent)
	g.clock.Start(h.Display())
	g.render()
	log.Printf("react: mounted session=%s best=%d", g.sessionID, g.best)
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
	log.Printf("react: unmounted session=%s streak=%d", g.sessionID, g.session.Streak)
}

// Restart returns to Idle; the next start input begins a fresh run
func (g *Game) Restart() {
	if g.host == nil {
		return
	}
	g.session.Reset()
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

// Start begins a live run
func (g *Game) Start() {
	if g.host == nil {
		return
	}
	g.session.Start()
	g.sessionID = uuid.New()
	g.render()
}

// Press feeds a pad input
func (g *Game) Press(target int) bool {
	handled, ok := g.session.Press(target)
	if !handled {
		return false
	}
	if ok {
		g.svc.Cues.Play(audio.CueHit)
	} else {
		g.finish()
	}
	g.render()
	return true
}

func (g *Game) update(dt float64) {
	if g.session.Tick(dt) {
		g.finish()
	}
}

func (g *Game) finish() {
	g.svc.Cues.Play(audio.CueFail)
	g.best = store.RaiseBest(g.svc.Store, constants.KeyBestReact, g.session.Streak)
	g.svc.Status.Badge(constants.GameReact).Raise(float64(g.best))
	log.Printf("react: session=%s ended %s streak=%d best=%d", g.sessionID, g.session.Outcome, g.session.Streak, g.best)
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	if g.host == nil {
		return false
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			if g.session.Phase == Live {
				return false
			}
			g.Start()
			return true
		}
		if ev.Key() == tcell.KeyRune {
			if pad, ok := padKeys[ev.Rune()]; ok {
				return g.Press(pad)
			}
		}
	case *tcell.EventMouse:
		held := g.pointer.Held()
		if !g.pointer.Press(ev) {
			// Drag reports of the press that already hit must not land on another pad
			return held && ev.Buttons()&tcell.Button1 != 0
		}
		x, y := ev.Position()
		for i, r := range g.pads {
			if r.Contains(x, y) {
				if g.session.Phase != Live {
					g.Start()
					return true
				}
				return g.Press(i)
			}
		}
	}
	return false
}
