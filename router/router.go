// Package router hosts the arcade menu and switches the single mounted game.
package router

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/render"
	"github.com/lixenwraith/neon-arcade/status"
	"github.com/lixenwraith/neon-arcade/store"
)

// App is the explicit application context shared by the router and its games
type App struct {
	Store   *store.Store
	Status  *status.Registry
	Cues    audio.Cues
	Display engine.Display
	Canvas  *render.Buffer
}

// menu is the active index while no game is mounted
const menu = -1

// Router owns the game list and at most one mounted game
type Router struct {
	app    App
	games  []engine.Game
	host   *host
	active int
	cursor int
}

// New creates a router showing the menu
func New(app App, games ...engine.Game) *Router {
	if app.Status == nil {
		app.Status = status.NewRegistry()
	}
	if app.Cues == nil {
		app.Cues = audio.Silent{}
	}
	r := &Router{
		app:    app,
		games:  games,
		host:   &host{canvas: app.Canvas, display: app.Display},
		active: menu,
	}
	r.RefreshBadges()
	return r
}

// Games returns the registered games in menu order
func (r *Router) Games() []engine.Game {
	return r.games
}

// Active returns the mounted game or nil on the menu
func (r *Router) Active() engine.Game {
	if r.active == menu {
		return nil
	}
	return r.games[r.active]
}

// Cursor returns the highlighted menu entry
func (r *Router) Cursor() int {
	return r.cursor
}

// Select unmounts the current game, then mounts game i
func (r *Router) Select(i int) bool {
	if i < 0 || i >= len(r.games) {
		return false
	}
	r.unmountActive()

	r.active = i
	r.cursor = i
	g := r.games[i]
	r.app.Status.Strings.Get(status.ActiveGame).Store(g.Info().ID)
	r.app.Cues.Play(audio.CueSelect)
	g.Mount(r.host)
	log.Printf("router: selected %s", g.Info().ID)
	return true
}

// Home unmounts the active game and shows the menu
func (r *Router) Home() {
	r.unmountActive()
	r.active = menu
	r.app.Status.Strings.Get(status.ActiveGame).Store("")
	r.RefreshBadges()
	r.Render()
}

// TogglePause forwards to the active game
func (r *Router) TogglePause() bool {
	if g := r.Active(); g != nil {
		return g.TogglePause()
	}
	return false
}

// Restart forwards to the active game
func (r *Router) Restart() {
	if g := r.Active(); g != nil {
		g.Restart()
	}
}

// ToggleMute flips the cue output and mirrors it into status
func (r *Router) ToggleMute() bool {
	muted := r.app.Cues.ToggleMute()
	r.app.Status.Bools.Get(status.AudioMuted).Store(muted)
	return muted
}

// RefreshBadges copies each game's stored summary into the status registry
func (r *Router) RefreshBadges() {
	for _, g := range r.games {
		r.app.Status.Badge(g.Info().ID).Set(g.Badge(r.app.Store))
	}
}

// Resize tracks the terminal size
func (r *Router) Resize(w, h int) {
	r.app.Canvas.Resize(w, h)
	r.Render()
}

func (r *Router) unmountActive() {
	if r.active == menu {
		return
	}
	g := r.games[r.active]
	g.Unmount()
	log.Printf("router: unmounted %s", g.Info().ID)
}

// HandleEvent routes one terminal event; returns false when the shell should quit
func (r *Router) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		r.Resize(w, h)
		return true
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if r.active == menu {
			return r.menuKey(ev)
		}
		if r.controlKey(ev) {
			return true
		}
	case *tcell.EventMouse:
		if r.active == menu {
			r.menuMouse(ev)
			return true
		}
	}
	if r.active != menu {
		r.host.dispatch(ev)
	}
	return true
}

// controlKey handles the shared controls while a game is mounted
func (r *Router) controlKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		r.Home()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p':
			r.TogglePause()
			return true
		case 'r':
			r.Restart()
			return true
		case 'm':
			r.ToggleMute()
			return true
		}
	}
	return false
}

func (r *Router) menuKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		r.cursor = (r.cursor + len(r.games) - 1) % len(r.games)
	case tcell.KeyDown:
		r.cursor = (r.cursor + 1) % len(r.games)
	case tcell.KeyEnter:
		r.Select(r.cursor)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'm':
			r.ToggleMute()
		default:
			if i := int(ev.Rune() - '1'); i >= 0 && i < len(r.games) {
				r.Select(i)
				return true
			}
		}
	}
	r.Render()
	return true
}

func (r *Router) menuMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	_, y := ev.Position()
	if i, ok := entryAt(y, len(r.games)); ok {
		r.Select(i)
	}
}
