package engine

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/status"
	"github.com/lixenwraith/neon-arcade/store"
)

// Info is the static description shown in the menu
type Info struct {
	ID         string
	Title      string
	Subtitle   string
	// BadgeLabel names the number Badge returns, e.g. "best"
	BadgeLabel string
}

// Game is the lifecycle contract every minigame implements
//
// Mount attaches input and starts the frame clock; Unmount detaches both
// and is idempotent. Restart and TogglePause are no-ops while unmounted.
// Badge reads the game's persisted summary and works without mounting.
type Game interface {
	Info() Info
	Mount(h Host)
	Unmount()
	Restart()
	TogglePause() bool
	Badge(s *store.Store) float64
}

// Canvas is the cell surface a game draws into
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, r rune, style tcell.Style)
	Clear()
}

// InputHandler consumes an event and reports whether it was used
type InputHandler func(ev tcell.Event) bool

// Host is the mountable container the router hands to the active game
type Host interface {
	Canvas() Canvas
	Display() Display
	// Listen installs h as the game's input handler; the returned func removes it
	Listen(h InputHandler) (cancel func())
}

// Services bundles collaborators shared by every game
type Services struct {
	Store  *store.Store
	Cues   audio.Cues
	Status *status.Registry
	Seed   int64
}

// Rand returns a generator for one game; salt separates games sharing a seed
func (s Services) Rand(salt int64) *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed + salt))
}

// WithDefaults fills nil collaborators with inert implementations
func (s Services) WithDefaults() Services {
	if s.Store == nil {
		s.Store = store.New(nil)
	}
	if s.Cues == nil {
		s.Cues = audio.Silent{}
	}
	if s.Status == nil {
		s.Status = status.NewRegistry()
	}
	return s
}
