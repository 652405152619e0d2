// Package game is the simulation core of the invaders arcade: a
// fixed-timestep state machine that advances entity positions, resolves
// collisions and transitions between screens. It contains pure logic with no
// terminal, audio or timer dependencies — the platform layer owns the host
// loop and invokes Tick at the configured rate.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Session is the per-run mutable state shared across screens: created when a
// new game starts, mutated only inside the active screen's update, reset on
// restart.
type Session struct {
	Lives int
	Score int
	Level int
}

// Game is the driver: it holds the config, playfield bounds, session state
// and the state stack, and dispatches one update+draw pass per tick to the
// active screen.
type Game struct {
	cfg     config.Config
	width   float64 // Logical canvas width
	height  float64 // Logical canvas height
	bounds  core.Bounds
	session Session
	states  []State
	pressed map[Key]bool
	sounds  SoundPlayer
	rng     *rand.Rand
	clock   float64 // Simulated milliseconds since Start
	running bool
}

// New creates a driver with the given config, sound system and RNG seed.
// A nil sounds player falls back to NullSound.
func New(cfg config.Config, sounds SoundPlayer, seed int64) *Game {
	if sounds == nil {
		sounds = &NullSound{}
	}
	return &Game{
		cfg:     cfg,
		sounds:  sounds,
		rng:     rand.New(rand.NewSource(seed)),
		pressed: make(map[Key]bool),
	}
}

// Initialise validates the configuration and computes the playfield bounds,
// centering the configured playfield inside a canvas of the given size.
// Must be called once before Start.
func (g *Game) Initialise(canvasW, canvasH float64) error {
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if canvasW < g.cfg.Field.Width || canvasH < g.cfg.Field.Height {
		return fmt.Errorf("canvas %vx%v smaller than playfield %vx%v",
			canvasW, canvasH, g.cfg.Field.Width, g.cfg.Field.Height)
	}
	g.width = canvasW
	g.height = canvasH
	g.bounds = core.CenteredBounds(canvasW, canvasH, g.cfg.Field.Width, g.cfg.Field.Height)
	return nil
}

// Start resets the session and transitions to the welcome screen. The host
// loop is expected to begin calling Tick at the configured rate.
func (g *Game) Start() {
	g.resetSession()
	g.clock = 0
	g.running = true
	g.MoveTo(&WelcomeState{})
}

// Stop halts tick processing. The state stack is left as-is.
func (g *Game) Stop() {
	g.running = false
}

// Running reports whether Start has been called and Stop has not.
func (g *Game) Running() bool {
	return g.running
}

// Dt returns the fixed timestep in seconds: 1 / tick rate. The simulation
// never measures wall clock time.
func (g *Game) Dt() float64 {
	return 1 / float64(g.cfg.TickRate)
}

// Tick runs one update+draw pass on the active screen. The renderer may be
// nil for headless simulation (tests); the draw pass is then skipped.
func (g *Game) Tick(r Renderer) {
	if !g.running {
		return
	}
	dt := g.Dt()
	g.clock += dt * 1000

	state := g.Current()
	if state == nil {
		return
	}
	if u, ok := state.(Updater); ok {
		u.Update(g, dt)
	}
	if r != nil {
		r.Clear()
		// The transition applied during update decides what is drawn
		if d, ok := g.Current().(Drawer); ok {
			d.Draw(g, dt, r)
		}
	}
}

// KeyDown records the key as held and forwards the discrete event to the
// active screen.
func (g *Game) KeyDown(k Key) {
	g.pressed[k] = true
	if h, ok := g.Current().(KeyDownHandler); ok {
		h.KeyDown(g, k)
	}
}

// KeyUp clears the held state and forwards the discrete event to the active
// screen.
func (g *Game) KeyUp(k Key) {
	delete(g.pressed, k)
	if h, ok := g.Current().(KeyUpHandler); ok {
		h.KeyUp(g, k)
	}
}

// Pressed reports whether the key is currently held.
func (g *Game) Pressed(k Key) bool {
	return g.pressed[k]
}

// SetMute forwards an explicit mute state to the sound system.
func (g *Game) SetMute(muted bool) {
	g.sounds.SetMute(muted)
}

// ToggleMute flips the sound system's mute state.
func (g *Game) ToggleMute() {
	g.sounds.SetMute(!g.sounds.Muted())
}

// MoveTo replaces the top of the stack with newState: the active screen's
// leave hook runs and it is removed, then newState's enter hook runs and it
// takes the active slot. On an empty stack the pop is a no-op, which is only
// well-formed for the very first transition.
func (g *Game) MoveTo(newState State) {
	if cur := g.Current(); cur != nil {
		if l, ok := cur.(Leaver); ok {
			l.Leave(g)
		}
		g.states = g.states[:len(g.states)-1]
	}
	if e, ok := newState.(Enterer); ok {
		e.Enter(g)
	}
	g.states = append(g.states, newState)
}

// Push layers a state over the current one without disturbing it. Used for
// the pause overlay.
func (g *Game) Push(s State) {
	if e, ok := s.(Enterer); ok {
		e.Enter(g)
	}
	g.states = append(g.states, s)
}

// Pop removes the active state, restoring the previous one as active.
// A no-op on an empty stack.
func (g *Game) Pop() {
	cur := g.Current()
	if cur == nil {
		return
	}
	if l, ok := cur.(Leaver); ok {
		l.Leave(g)
	}
	g.states = g.states[:len(g.states)-1]
}

// Current returns the active (top-of-stack) state, or nil.
func (g *Game) Current() State {
	if len(g.states) == 0 {
		return nil
	}
	return g.states[len(g.states)-1]
}

// StateName returns the active state's name, or "" with no active state.
func (g *Game) StateName() string {
	if s := g.Current(); s != nil {
		return s.Name()
	}
	return ""
}

// Depth returns the current stack depth.
func (g *Game) Depth() int {
	return len(g.states)
}

// Session returns a copy of the current session state.
func (g *Game) Session() Session {
	return g.session
}

// Bounds returns the playfield bounds.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Config returns the per-run configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Size returns the logical canvas dimensions.
func (g *Game) Size() (w, h float64) {
	return g.width, g.height
}

func (g *Game) resetSession() {
	g.session = Session{Lives: 3, Score: 0, Level: 1}
}
