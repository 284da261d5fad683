package term

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestANSIFrame(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf)
	if err := a.Draw([]string{"  █ ", " ██ ", "    "}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := a.Rewind(3); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	want := "  █ \n ██ \n    \n\x1b[3A\x1b[2K"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	buf.Reset()
	if err := a.Release(3); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if got := buf.String(); got != "\x1b[3B" {
		t.Fatalf("Release wrote %q", got)
	}
}

type failWriter struct{}

var errClosed = errors.New("closed")

func (failWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestANSIWriteError(t *testing.T) {
	a := NewANSI(failWriter{})
	if err := a.Draw([]string{"x"}); !errors.Is(err, errClosed) {
		t.Fatalf("Draw = %v, want %v", err, errClosed)
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func TestScreenDraw(t *testing.T) {
	sim := newSimScreen(t, 6, 3)
	sc := NewScreen(sim)
	defer sc.Close()

	rows := []string{"█    █", " ▒▒▒  ", "      "}
	if err := sc.Draw(rows); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := sc.Rewind(3); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	cells, w, _ := sim.GetContents()
	for y, row := range rows {
		for x, r := range []rune(row) {
			got := cells[y*w+x].Runes
			if len(got) == 0 || got[0] != r {
				t.Fatalf("cell (%d,%d) = %q, want %q", x, y, got, r)
			}
		}
	}
}

func TestScreenWatchKeys(t *testing.T) {
	sim := newSimScreen(t, 4, 4)
	sc := NewScreen(sim)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		sc.WatchKeys(cancel)
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("q did not cancel")
	}

	sc.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WatchKeys did not return after Close")
	}
}
