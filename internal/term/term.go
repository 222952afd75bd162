// Package term owns the terminal: raw-mode lifecycle, decoding tcell
// input into key events, and drawing frames from engine snapshots. The
// engine never touches tcell and the renderer never mutates engine
// state; the two meet only through engine.Snapshot.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ked/internal/input/key"
)

// EventKind classifies a terminal event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventKey
	EventResize
)

// Event is one decoded terminal event.
type Event struct {
	Kind EventKind
	Key  key.Event
}

// Screen wraps the tcell screen and pumps its events into a channel so
// the application loop can select across input and other sources.
type Screen struct {
	tc     tcell.Screen
	events chan Event
}

// Open enters raw mode and starts the event pump.
func Open() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	s := &Screen{
		tc:     tc,
		events: make(chan Event, 16),
	}
	go s.pump()
	return s, nil
}

// Events returns the decoded event stream. The channel closes shortly
// after Close restores the terminal.
func (s *Screen) Events() <-chan Event {
	return s.events
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (cols, rows int) {
	return s.tc.Size()
}

// Close restores the terminal to cooked mode.
func (s *Screen) Close() {
	s.tc.Fini()
}

// pump converts tcell events until the screen is finalized.
func (s *Screen) pump() {
	for {
		tev := s.tc.PollEvent()
		if tev == nil {
			close(s.events)
			return
		}
		switch ev := tev.(type) {
		case *tcell.EventKey:
			if kev, ok := convertKey(ev); ok {
				s.events <- Event{Kind: EventKey, Key: kev}
			}
		case *tcell.EventResize:
			s.tc.Sync()
			s.events <- Event{Kind: EventResize}
		}
	}
}
