package game

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// recordingState implements every hook and appends to a shared journal.
type recordingState struct {
	name    string
	journal *[]string
}

func (s *recordingState) Name() string { return s.name }

func (s *recordingState) Enter(*Game) { *s.journal = append(*s.journal, s.name+":enter") }

func (s *recordingState) Leave(*Game) { *s.journal = append(*s.journal, s.name+":leave") }

func (s *recordingState) Update(*Game, float64) { *s.journal = append(*s.journal, s.name+":update") }

func (s *recordingState) Draw(*Game, float64, Renderer) {
	*s.journal = append(*s.journal, s.name+":draw")
}

func (s *recordingState) KeyDown(_ *Game, k Key) {
	*s.journal = append(*s.journal, s.name+":keydown:"+k.String())
}

func (s *recordingState) KeyUp(_ *Game, k Key) {
	*s.journal = append(*s.journal, s.name+":keyup:"+k.String())
}

// bareState implements no optional hooks at all.
type bareState struct{}

func (bareState) Name() string { return "bare" }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.Default(), nil, 1)
	if err := g.Initialise(600, 400); err != nil {
		t.Fatalf("Initialise: %v", err)
	}
	return g
}

func TestMoveToFirstTransition(t *testing.T) {
	g := newTestGame(t)
	var journal []string

	// MoveTo on an empty stack: the pop is a no-op
	g.MoveTo(&recordingState{name: "a", journal: &journal})

	if g.Depth() != 1 {
		t.Fatalf("Depth = %d, expected 1", g.Depth())
	}
	if g.StateName() != "a" {
		t.Errorf("StateName = %q, expected a", g.StateName())
	}
	if len(journal) != 1 || journal[0] != "a:enter" {
		t.Errorf("journal = %v, expected [a:enter]", journal)
	}
}

func TestMoveToReplacesTop(t *testing.T) {
	g := newTestGame(t)
	var journal []string

	g.MoveTo(&recordingState{name: "a", journal: &journal})
	g.MoveTo(&recordingState{name: "b", journal: &journal})

	if g.Depth() != 1 {
		t.Fatalf("Depth = %d, expected 1 after replacement", g.Depth())
	}
	want := []string{"a:enter", "a:leave", "b:enter"}
	if len(journal) != len(want) {
		t.Fatalf("journal = %v, expected %v", journal, want)
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Errorf("journal[%d] = %q, expected %q", i, journal[i], want[i])
		}
	}
}

func TestPushPopLayersState(t *testing.T) {
	g := newTestGame(t)
	var journal []string

	g.MoveTo(&recordingState{name: "base", journal: &journal})
	g.Push(&recordingState{name: "overlay", journal: &journal})

	if g.Depth() != 2 {
		t.Fatalf("Depth = %d, expected 2 after push", g.Depth())
	}
	if g.StateName() != "overlay" {
		t.Errorf("active = %q, expected overlay", g.StateName())
	}

	g.Pop()

	if g.Depth() != 1 || g.StateName() != "base" {
		t.Errorf("after pop: depth=%d active=%q, expected 1/base", g.Depth(), g.StateName())
	}
	last := journal[len(journal)-1]
	if last != "overlay:leave" {
		t.Errorf("last journal entry = %q, expected overlay:leave", last)
	}
}

func TestPopEmptyStackIsNoop(t *testing.T) {
	g := newTestGame(t)
	g.Pop() // Must not panic
	if g.Current() != nil {
		t.Error("Current should be nil on empty stack")
	}
	if g.StateName() != "" {
		t.Errorf("StateName = %q, expected empty", g.StateName())
	}
}

func TestMissingHooksAreSkipped(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.MoveTo(bareState{})

	// None of these may panic even though bareState has no hooks
	g.Tick(nil)
	g.KeyDown(KeyFire)
	g.KeyUp(KeyFire)
	g.MoveTo(bareState{})
	g.Push(bareState{})
	g.Pop()
}

func TestKeyEventsReachActiveStateOnly(t *testing.T) {
	g := newTestGame(t)
	var journal []string

	g.MoveTo(&recordingState{name: "below", journal: &journal})
	g.Push(&recordingState{name: "top", journal: &journal})
	journal = journal[:0]

	g.KeyDown(KeyLeft)
	g.KeyUp(KeyLeft)

	want := []string{"top:keydown:left", "top:keyup:left"}
	if len(journal) != len(want) || journal[0] != want[0] || journal[1] != want[1] {
		t.Errorf("journal = %v, expected %v", journal, want)
	}
}
