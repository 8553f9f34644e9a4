// Package clicker implements Neon Clicker, an idle/active bit accumulator
// with an upgrade shop.
package clicker

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/store"
)

// Game is the Neon Clicker engine
type Game struct {
	svc    engine.Services
	econ   *Economy
	paused bool

	// critFlash counts down the crit banner, in seconds
	critFlash float64
	lastGain  float64

	host        engine.Host
	clock       engine.FrameClock
	cancelInput func()
	pointer     engine.PressEdge
	layout      layout
	sessionID   uuid.UUID
}

// New creates an unmounted clicker
func New(svc engine.Services) *Game {
	svc = svc.WithDefaults()
	g := &Game{svc: svc, econ: NewEconomy(DefaultState(), svc.Rand(2))}
	g.clock = engine.FrameClock{
		Update:  g.update,
		Render:  g.render,
		Advance: func() bool { return !g.paused },
	}
	return g
}

func (g *Game) Info() engine.Info {
	return engine.Info{
		ID:         constants.GameClicker,
		Title:      "Neon Clicker",
		Subtitle:   "Hack bits, buy upgrades, let the drip run",
		BadgeLabel: "total",
	}
}

// Badge returns the lifetime total from the stored record
func (g *Game) Badge(s *store.Store) float64 {
	return store.Get(s, constants.KeyClickerState, DefaultState()).Normalize().Total
}

// State returns a copy of the current economy state
func (g *Game) State() State {
	return g.econ.State
}

// Paused reports the pause flag
func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) Mount(h engine.Host) {
	if g.host != nil {
		g.Unmount()
	}
	g.host = h
	saved := store.Get(g.svc.Store, constants.KeyClickerState, DefaultState())
	g.econ = NewEconomy(saved.Normalize(), g.econ.rng)
	g.paused = false
	g.critFlash = 0
	g.pointer.Reset()
	g.sessionID = uuid.New()
	g.cancelInput = h.Listen(g.handleEvent)
	g.clock.Start(h.Display())
	g.render()
	log.Printf("clicker: mounted session=%s bits=%.1f total=%.1f", g.sessionID, g.econ.State.Bits, g.econ.State.Total)
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
	log.Printf("clicker: unmounted session=%s", g.sessionID)
}

// Restart wipes all progress and persists the fresh record
func (g *Game) Restart() {
	if g.host == nil {
		return
	}
	g.econ.Reset()
	g.paused = false
	g.critFlash = 0
	g.lastGain = 0
	g.persist()
	g.render()
	log.Printf("clicker: progress reset session=%s", g.sessionID)
}

func (g *Game) TogglePause() bool {
	if g.host == nil {
		return false
	}
	g.paused = !g.paused
	g.render()
	return g.paused
}

// Click performs one active click
func (g *Game) Click() {
	if g.host == nil {
		return
	}
	gain, crit := g.econ.Click()
	g.lastGain = gain
	if crit {
		g.critFlash = constants.ClickerCritFlash.Seconds()
		g.svc.Cues.Play(audio.CueCrit)
	} else {
		g.svc.Cues.Play(audio.CueClick)
	}
	g.persist()
	g.render()
}

// Buy attempts to purchase the upgrade with id
func (g *Game) Buy(id string) bool {
	if g.host == nil || !g.econ.Buy(id) {
		return false
	}
	g.svc.Cues.Play(audio.CuePurchase)
	g.persist()
	g.render()
	return true
}

func (g *Game) update(dt float64) {
	if g.critFlash > 0 {
		g.critFlash -= dt
	}
	// Zero drip discharges quanta without changing state
	if g.econ.Tick(dt) > 0 && g.econ.State.BitsPerSecond > 0 {
		g.persist()
	}
}

func (g *Game) persist() {
	g.svc.Store.Set(constants.KeyClickerState, g.econ.State)
	g.svc.Status.Badge(constants.GameClicker).Set(g.econ.State.Total)
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEnter:
			g.Click()
			return true
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				g.Click()
				return true
			}
			for _, u := range Upgrades {
				if ev.Rune() == u.Key {
					g.Buy(u.ID)
					return true
				}
			}
		}
	case *tcell.EventMouse:
		held := g.pointer.Held()
		if !g.pointer.Press(ev) {
			// Repeats of a held press are swallowed
			return held && ev.Buttons()&tcell.Button1 != 0
		}
		x, y := ev.Position()
		if g.layout.button.Contains(x, y) {
			g.Click()
			return true
		}
		for i, row := range g.layout.rows {
			if row.Contains(x, y) {
				g.Buy(Upgrades[i].ID)
				return true
			}
		}
	}
	return false
}
