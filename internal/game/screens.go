package game

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// WelcomeState is the title screen. Entering it preloads the sound assets;
// pressing fire starts a fresh game.
type WelcomeState struct{}

func (*WelcomeState) Name() string { return "welcome" }

func (*WelcomeState) Enter(g *Game) {
	g.sounds.Load(SoundShoot)
	g.sounds.Load(SoundBang)
	g.sounds.Load(SoundExplosion)
}

func (*WelcomeState) Draw(g *Game, _ float64, r Renderer) {
	cx := g.width / 2
	r.Text("Space Invaders", cx, g.height/2-40, AlignCenter, core.ColorBrightGreen)
	r.Text("Press Space to start", cx, g.height/2, AlignCenter, core.ColorWhite)
	r.Text("Arrows move, Space fires, P pauses", cx, g.height/2+20, AlignCenter, core.ColorGray)
}

func (*WelcomeState) KeyDown(g *Game, k Key) {
	if k == KeyFire {
		g.resetSession()
		g.MoveTo(NewLevelIntro(1))
	}
}

// GameOverState shows the final score. Pressing fire starts over.
type GameOverState struct{}

func (*GameOverState) Name() string { return "gameover" }

func (*GameOverState) Draw(g *Game, _ float64, r Renderer) {
	cx := g.width / 2
	r.Text("Game Over!", cx, g.height/2-40, AlignCenter, core.ColorRed)
	r.Text(fmt.Sprintf("You scored %d and got to level %d", g.session.Score, g.session.Level),
		cx, g.height/2, AlignCenter, core.ColorWhite)
	r.Text("Press Space to play again", cx, g.height/2+20, AlignCenter, core.ColorGray)
}

func (*GameOverState) KeyDown(g *Game, k Key) {
	if k == KeyFire {
		g.resetSession()
		g.MoveTo(NewLevelIntro(1))
	}
}

// PauseState is pushed over the play screen, freezing it. It has no update;
// the play state underneath stays intact until this pops itself.
type PauseState struct{}

func (*PauseState) Name() string { return "pause" }

func (*PauseState) Draw(g *Game, _ float64, r Renderer) {
	r.Text("Paused", g.width/2, g.height/2, AlignCenter, core.ColorBrightYellow)
	r.Text("Press P to resume", g.width/2, g.height/2+20, AlignCenter, core.ColorGray)
}

func (*PauseState) KeyDown(g *Game, k Key) {
	if k == KeyPause {
		g.Pop()
	}
}

// LevelIntroState counts down three seconds before a level starts. One-shot:
// once the countdown hits zero it hands over to the play state.
type LevelIntroState struct {
	level     int
	countdown float64
}

// NewLevelIntro creates the intro screen for the given level.
func NewLevelIntro(level int) *LevelIntroState {
	if level < 1 {
		level = 1
	}
	return &LevelIntroState{level: level, countdown: 3}
}

func (s *LevelIntroState) Name() string { return "levelintro" }

func (s *LevelIntroState) Update(g *Game, dt float64) {
	s.countdown -= dt
	if s.countdown <= 0 {
		g.MoveTo(NewPlay(s.level))
	}
}

// Message returns the countdown digit currently displayed.
func (s *LevelIntroState) Message() string {
	switch {
	case s.countdown >= 2:
		return "3"
	case s.countdown >= 1:
		return "2"
	default:
		return "1"
	}
}

func (s *LevelIntroState) Draw(g *Game, _ float64, r Renderer) {
	cx := g.width / 2
	r.Text(fmt.Sprintf("Level %d", s.level), cx, g.height/2-20, AlignCenter, core.ColorBrightGreen)
	r.Text("Ready in "+s.Message(), cx, g.height/2+10, AlignCenter, core.ColorWhite)
}
