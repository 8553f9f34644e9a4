// Package terminal owns the tcell screen and feeds its events to the game loop.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// EventQueueSize is the input channel capacity
const EventQueueSize = 256

// Service manages screen lifecycle and input polling
type Service struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	inited  bool
}

// NewService wraps screen; nil creates the default terminal screen on Init
func NewService(screen tcell.Screen) *Service {
	return &Service{
		screen:  screen,
		eventCh: make(chan tcell.Event, EventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init opens the screen with mouse reporting enabled
func (s *Service) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal create: %w", err)
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.inited = true
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Start launches the input polling goroutine
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.pollLoop()
}

// pollLoop forwards screen events until stopped or the screen closes
func (s *Service) pollLoop() {
	defer close(s.doneCh)
	defer Recover("terminal poll")

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			select {
			case <-s.stopCh:
				return
			default:
				continue
			}
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends polling and restores the terminal
func (s *Service) Stop() {
	s.mu.Lock()
	running := s.running
	s.running = false
	s.mu.Unlock()

	if running {
		close(s.stopCh)
		// Unblock PollEvent
		s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}
	if s.inited {
		s.inited = false
		s.screen.Fini()
	}
}

// Screen returns the wrapped screen
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
