package game

import (
	"testing"
)

func TestWelcomeStartsGameOnFire(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.KeyDown(KeyFire)

	if g.StateName() != "levelintro" {
		t.Fatalf("state = %q, expected levelintro", g.StateName())
	}
	intro, ok := g.Current().(*LevelIntroState)
	if !ok || intro.level != 1 {
		t.Errorf("expected LevelIntro(1), got %#v", g.Current())
	}
	s := g.Session()
	if s.Lives != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("session = %+v, expected fresh 3/0/1", s)
	}
}

func TestWelcomeIgnoresOtherKeys(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.KeyDown(KeyLeft)
	g.KeyDown(KeyPause)

	if g.StateName() != "welcome" {
		t.Errorf("state = %q, expected welcome", g.StateName())
	}
}

func TestLevelIntroCountdownMessages(t *testing.T) {
	tests := []struct {
		countdown float64
		want      string
	}{
		{3.0, "3"},
		{2.5, "3"},
		{2.0, "3"},
		{1.99, "2"},
		{1.0, "2"},
		{0.99, "1"},
		{0.01, "1"},
	}

	for _, tc := range tests {
		s := NewLevelIntro(1)
		s.countdown = tc.countdown
		if got := s.Message(); got != tc.want {
			t.Errorf("Message at countdown=%v = %q, expected %q", tc.countdown, got, tc.want)
		}
	}
}

func TestLevelIntroHandsOverToPlay(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.MoveTo(NewLevelIntro(2))

	// 3 seconds at 50 ticks/s, plus one tick to cross zero
	for i := 0; i < 151; i++ {
		g.Tick(nil)
	}

	if g.StateName() != "play" {
		t.Fatalf("state = %q, expected play after countdown", g.StateName())
	}
	play, ok := g.Current().(*PlayState)
	if !ok || play.Level() != 2 {
		t.Errorf("expected Play level 2, got %#v", g.Current())
	}
}

func TestLevelIntroDoesNotTransitionEarly(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.MoveTo(NewLevelIntro(1))

	// 2 seconds: countdown still positive
	for i := 0; i < 100; i++ {
		g.Tick(nil)
	}

	if g.StateName() != "levelintro" {
		t.Errorf("state = %q, expected levelintro mid-countdown", g.StateName())
	}
}

func TestPausePreservesPlayUnderneath(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	play := NewPlay(1)
	g.MoveTo(play)

	before := len(play.invaders)

	g.KeyDown(KeyPause)
	g.KeyUp(KeyPause)

	if g.StateName() != "pause" || g.Depth() != 2 {
		t.Fatalf("state = %q depth=%d, expected pause layered over play", g.StateName(), g.Depth())
	}

	// Ticks while paused must not advance the simulation
	for i := 0; i < 50; i++ {
		g.Tick(nil)
	}
	if len(play.invaders) != before {
		t.Error("play state mutated while paused")
	}

	g.KeyDown(KeyPause)
	g.KeyUp(KeyPause)

	if g.StateName() != "play" || g.Depth() != 1 {
		t.Errorf("state = %q depth=%d, expected play restored", g.StateName(), g.Depth())
	}
	if g.Current() != State(play) {
		t.Error("resumed play state is not the original instance")
	}
}

func TestGameOverRestartsOnFire(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.MoveTo(&GameOverState{})

	g.KeyDown(KeyFire)

	if g.StateName() != "levelintro" {
		t.Fatalf("state = %q, expected levelintro", g.StateName())
	}
	s := g.Session()
	if s.Lives != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("session = %+v, expected reset to 3/0/1", s)
	}
}

func TestGameOverIsIdempotentUnderTicks(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.session = Session{Lives: 0, Score: 120, Level: 4}
	g.MoveTo(&GameOverState{})

	for i := 0; i < 200; i++ {
		g.Tick(nil)
	}

	s := g.Session()
	if s.Lives != 0 || s.Score != 120 || s.Level != 4 {
		t.Errorf("session mutated by idle game-over ticks: %+v", s)
	}
	if g.StateName() != "gameover" {
		t.Errorf("state = %q, expected gameover", g.StateName())
	}
}
