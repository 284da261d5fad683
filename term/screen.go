package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen draws frames on a full-screen tcell screen.
type Screen struct {
	s     tcell.Screen
	style tcell.Style
}

// OpenScreen initializes the terminal for full-screen drawing. Call Close
// to restore it.
func OpenScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return NewScreen(s), nil
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	s.HideCursor()
	s.Clear()
	return &Screen{s: s, style: tcell.StyleDefault}
}

// Draw writes rows starting at the top-left cell and shows them.
func (sc *Screen) Draw(rows []string) error {
	for y, row := range rows {
		x := 0
		for _, r := range row {
			sc.s.SetContent(x, y, r, nil, sc.style)
			x++
		}
	}
	sc.s.Show()
	return nil
}

// Rewind is a no-op: every Draw rewrites all cells of the frame.
func (sc *Screen) Rewind(int) error { return nil }

// WatchKeys cancels the animation when q, Esc or Ctrl-C is pressed. The
// terminal is in raw mode, so Ctrl-C does not raise SIGINT. WatchKeys
// returns once Close has been called.
func (sc *Screen) WatchKeys(cancel context.CancelFunc) {
	for {
		switch ev := sc.s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
			}
		case *tcell.EventResize:
			sc.s.Sync()
		}
	}
}

// Close restores the terminal.
func (sc *Screen) Close() {
	sc.s.Fini()
}
