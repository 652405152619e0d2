package game

// State is one screen of the game: welcome, level intro, play, pause or
// game over. A state implements any subset of the optional hook interfaces
// below; the driver dispatches each hook by type assertion, and a missing
// hook is simply skipped, never an error.
type State interface {
	// Name returns a stable identifier for the state ("welcome", "play", ...).
	Name() string
}

// Enterer is implemented by states that need setup when they become active.
type Enterer interface {
	Enter(g *Game)
}

// Leaver is implemented by states that need teardown when they are removed.
type Leaver interface {
	Leave(g *Game)
}

// Updater is implemented by states that advance simulation each tick.
type Updater interface {
	Update(g *Game, dt float64)
}

// Drawer is implemented by states that paint to the renderer each tick.
type Drawer interface {
	Draw(g *Game, dt float64, r Renderer)
}

// KeyDownHandler receives discrete key-press events.
type KeyDownHandler interface {
	KeyDown(g *Game, k Key)
}

// KeyUpHandler receives discrete key-release events.
type KeyUpHandler interface {
	KeyUp(g *Game, k Key)
}
