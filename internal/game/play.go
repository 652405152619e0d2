package game

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Vertical spacing between formation ranks, in game units.
const rankSpacing = 20.0

// Bonus score per level on clearing the swarm.
const levelClearBonus = 50

// PlayState is the core simulation screen: it owns the entities, the swarm
// controller and the collision bookkeeping for one level.
type PlayState struct {
	level int

	// Level-scaled parameters, computed on entry
	invaderInitialVelocity float64
	bombRate               float64
	bombMinVelocity        float64
	bombMaxVelocity        float64
	rocketMaxFireRate      float64 // Rockets per second

	ship     Ship
	rockets  []Rocket
	bombs    []Bomb
	invaders []Invader

	// Swarm movement. The whole formation shares one velocity vector; after
	// an edge bounce it descends by the configured drop distance before
	// resuming horizontal motion in the reversed direction.
	invaderCurrentVelocity float64 // Speed magnitude
	invaderVelocity        core.Vec2
	dropping               bool
	dropDistance           float64 // Accumulated descent in the current drop
	nextVelocity           core.Vec2

	lastRocketAt float64 // Simulated ms of last fire; negative = never fired
}

// NewPlay creates the play screen for the given level (1-based).
func NewPlay(level int) *PlayState {
	if level < 1 {
		level = 1
	}
	return &PlayState{level: level, lastRocketAt: -1}
}

// Level returns the level this play state was entered with.
func (p *PlayState) Level() int {
	return p.level
}

// Enter computes level-scaled parameters and builds the invader grid.
func (p *PlayState) Enter(g *Game) {
	cfg := g.cfg

	levelMultiplier := float64(p.level) * cfg.Scoring.DifficultyMultiplier
	limitLevel := min(p.level, cfg.Scoring.LimitLevel)

	p.invaderInitialVelocity = cfg.Invaders.InitialVelocity + 1.5*levelMultiplier*cfg.Invaders.InitialVelocity
	p.bombRate = cfg.Bombs.Rate + levelMultiplier*cfg.Bombs.Rate
	p.bombMinVelocity = cfg.Bombs.MinVelocity + levelMultiplier*cfg.Bombs.MinVelocity
	p.bombMaxVelocity = cfg.Bombs.MaxVelocity + levelMultiplier*cfg.Bombs.MaxVelocity
	p.rocketMaxFireRate = cfg.Rockets.MaxFireRate + 0.4*float64(limitLevel)

	p.ship = NewShip(g.width/2, g.bounds.Bottom-ShipHeight/2)
	p.rockets = nil
	p.bombs = nil

	// Formation size grows with level; fractional dimensions are truncated
	// by the loop bound comparison.
	ranks := float64(cfg.Invaders.Ranks) + 0.1*float64(limitLevel)
	files := float64(cfg.Invaders.Files) + 0.2*float64(limitLevel)
	spread := cfg.Field.Width / 2

	p.invaders = nil
	for rank := 0; float64(rank) < ranks; rank++ {
		for file := 0; float64(file) < files; file++ {
			x := g.width/2 + (files/2-float64(file))*spread/files
			y := g.bounds.Top + float64(rank)*rankSpacing
			p.invaders = append(p.invaders, NewInvader(x, y, rank, file))
		}
	}

	p.invaderCurrentVelocity = p.invaderInitialVelocity
	p.invaderVelocity = core.Vec2{X: -p.invaderInitialVelocity, Y: 0}
	p.dropping = false
	p.dropDistance = 0
}

func (p *PlayState) Name() string { return "play" }

// Update runs one simulation tick. Step order matters: later steps can end
// the game or the level this very tick.
func (p *PlayState) Update(g *Game, dt float64) {
	cfg := g.cfg

	// 1. Ship control: held keys move and fire, position clamped to bounds.
	if g.Pressed(KeyLeft) {
		p.ship.X -= cfg.Ship.Speed * dt
	}
	if g.Pressed(KeyRight) {
		p.ship.X += cfg.Ship.Speed * dt
	}
	p.ship.X = core.ClampF(p.ship.X, g.bounds.Left, g.bounds.Right)
	if g.Pressed(KeyFire) {
		p.fireRocket(g)
	}

	// 2. Projectile advance. Bombs fall and are culled below the canvas;
	// rockets climb and are culled above it.
	bombs := p.bombs[:0]
	for _, bomb := range p.bombs {
		bomb.Y += bomb.Velocity * dt
		if bomb.Y <= g.height {
			bombs = append(bombs, bomb)
		}
	}
	p.bombs = bombs

	rockets := p.rockets[:0]
	for _, rocket := range p.rockets {
		rocket.Y -= rocket.Velocity * dt
		if rocket.Y >= 0 {
			rockets = append(rockets, rocket)
		}
	}
	p.rockets = rockets

	// 3. Formation advance: tentative lockstep move, constrained by the
	// first invader to reach a boundary. Left takes precedence over right,
	// right over bottom; first detection wins across the whole set.
	var hitLeft, hitRight, hitBottom bool
	tentative := make([]core.Vec2, len(p.invaders))
	for i, inv := range p.invaders {
		nx := inv.X + p.invaderVelocity.X*dt
		ny := inv.Y + p.invaderVelocity.Y*dt
		if !hitLeft && !hitRight && !hitBottom {
			switch {
			case nx < g.bounds.Left:
				hitLeft = true
			case nx > g.bounds.Right:
				hitRight = true
			case ny > g.bounds.Bottom:
				hitBottom = true
			}
		}
		tentative[i] = core.Vec2{X: nx, Y: ny}
	}
	if !hitLeft && !hitRight && !hitBottom {
		for i := range p.invaders {
			p.invaders[i].X = tentative[i].X
			p.invaders[i].Y = tentative[i].Y
		}
	}

	// 4. Drop transition: once the swarm has descended far enough, resume
	// horizontal motion in the queued direction.
	if p.dropping {
		p.dropDistance += p.invaderVelocity.Y * dt
		if p.dropDistance >= cfg.Invaders.DropDistance {
			p.dropping = false
			p.invaderVelocity = p.nextVelocity
			p.dropDistance = 0
		}
	}

	// 5. Edge reaction: bounce accelerates the swarm, turns it straight
	// down and queues the reversed horizontal velocity. Reaching the bottom
	// ends the game outright.
	if hitLeft {
		p.invaderCurrentVelocity += cfg.Invaders.Acceleration
		p.invaderVelocity = core.Vec2{X: 0, Y: p.invaderCurrentVelocity}
		p.dropping = true
		p.nextVelocity = core.Vec2{X: p.invaderCurrentVelocity, Y: 0}
	}
	if hitRight {
		p.invaderCurrentVelocity += cfg.Invaders.Acceleration
		p.invaderVelocity = core.Vec2{X: 0, Y: p.invaderCurrentVelocity}
		p.dropping = true
		p.nextVelocity = core.Vec2{X: -p.invaderCurrentVelocity, Y: 0}
	}
	if hitBottom {
		g.session.Lives = 0
	}

	// 6. Rocket/invader collisions. Each rocket is a point tested against
	// the invader's box; at most one rocket is consumed per invader.
	invaders := p.invaders[:0]
	for _, inv := range p.invaders {
		hit := false
		for ri, rocket := range p.rockets {
			if core.PointInBox(rocket.X, rocket.Y, inv.X, inv.Y, inv.W, inv.H) {
				p.rockets = append(p.rockets[:ri], p.rockets[ri+1:]...)
				hit = true
				break
			}
		}
		if hit {
			g.session.Score += cfg.Scoring.PointsPerInvader
			g.sounds.Play(SoundBang)
		} else {
			invaders = append(invaders, inv)
		}
	}
	p.invaders = invaders

	// 7. Bomb scheduling: only the front-rank invader of each file may
	// drop, rolled independently per file.
	for _, front := range p.frontRank() {
		chance := p.bombRate * dt
		if chance > g.rng.Float64() {
			velocity := p.bombMinVelocity + g.rng.Float64()*(p.bombMaxVelocity-p.bombMinVelocity)
			p.bombs = append(p.bombs, NewBomb(front.X, front.Y+front.H/2, velocity))
		}
	}

	// 8. Bomb/ship collisions. Several bombs may connect in one tick, each
	// costing a life.
	bombs = p.bombs[:0]
	for _, bomb := range p.bombs {
		if core.PointInBox(bomb.X, bomb.Y, p.ship.X, p.ship.Y, p.ship.W, p.ship.H) {
			g.session.Lives--
			g.sounds.Play(SoundExplosion)
		} else {
			bombs = append(bombs, bomb)
		}
	}
	p.bombs = bombs

	// 9. Invader/ship collision is instantly fatal.
	for _, inv := range p.invaders {
		if core.BoxesOverlap(inv.X, inv.Y, inv.W, inv.H, p.ship.X, p.ship.Y, p.ship.W, p.ship.H) {
			g.session.Lives = 0
			break
		}
	}

	// 10. Terminal checks.
	if g.session.Lives <= 0 {
		g.session.Lives = 0
		g.MoveTo(&GameOverState{})
		return
	}
	if len(p.invaders) == 0 {
		g.session.Score += p.level * levelClearBonus
		g.session.Level++
		g.MoveTo(NewLevelIntro(g.session.Level))
	}
}

// frontRank returns, per file, the invader closest to the ship (highest
// rank), in ascending file order for deterministic bomb rolls.
func (p *PlayState) frontRank() []Invader {
	front := make(map[int]Invader)
	for _, inv := range p.invaders {
		if cur, ok := front[inv.File]; !ok || inv.Rank > cur.Rank {
			front[inv.File] = inv
		}
	}

	files := make([]int, 0, len(front))
	for file := range front {
		files = append(files, file)
	}
	sort.Ints(files)

	result := make([]Invader, 0, len(files))
	for _, file := range files {
		result = append(result, front[file])
	}
	return result
}

// fireRocket spawns a rocket at the ship's nose, subject to the fire-rate
// limit. The limiter runs on simulated time, not the wall clock, so replays
// with the same seed and inputs are reproducible.
func (p *PlayState) fireRocket(g *Game) {
	interval := 1000 / p.rocketMaxFireRate
	if p.lastRocketAt >= 0 && g.clock-p.lastRocketAt <= interval {
		return
	}
	p.lastRocketAt = g.clock
	p.rockets = append(p.rockets, NewRocket(p.ship.X, p.ship.Y-p.ship.H/2, g.cfg.Rockets.Velocity))
	g.sounds.Play(SoundShoot)
}

func (p *PlayState) KeyDown(g *Game, k Key) {
	switch k {
	case KeyFire:
		// Discrete path shares the limiter with the held-key path
		p.fireRocket(g)
	case KeyPause:
		g.Push(&PauseState{})
	}
}

// Draw paints the playfield: ship, swarm, projectiles and the HUD.
func (p *PlayState) Draw(g *Game, _ float64, r Renderer) {
	r.FillRect(p.ship.X-p.ship.W/2, p.ship.Y-p.ship.H/2, p.ship.W, p.ship.H, core.ColorBrightGreen)

	for _, inv := range p.invaders {
		r.FillRect(inv.X-inv.W/2, inv.Y-inv.H/2, inv.W, inv.H, core.ColorMagenta)
	}
	for _, rocket := range p.rockets {
		r.FillRect(rocket.X-rocket.W/2, rocket.Y-rocket.H/2, rocket.W, rocket.H, core.ColorBrightWhite)
	}
	for _, bomb := range p.bombs {
		r.FillRect(bomb.X-bomb.W/2, bomb.Y-bomb.H/2, bomb.W, bomb.H, core.ColorOrange)
	}

	hudY := g.bounds.Top - 14
	r.Text(fmt.Sprintf("Score: %d", g.session.Score), g.bounds.Left, hudY, AlignLeft, core.ColorWhite)
	r.Text(fmt.Sprintf("Level: %d", g.session.Level), g.width/2, hudY, AlignCenter, core.ColorWhite)
	r.Text(fmt.Sprintf("Lives: %d", g.session.Lives), g.bounds.Right, hudY, AlignRight, core.ColorWhite)

	if g.cfg.Debug {
		r.Text(fmt.Sprintf("state=%s invaders=%d", g.StateName(), len(p.invaders)),
			g.bounds.Left, g.bounds.Bottom+10, AlignLeft, core.ColorGray)
		r.StrokeRect(g.bounds.Left, g.bounds.Top, g.bounds.Width(), g.bounds.Height(), core.ColorGray)
		r.StrokeRect(p.ship.X-p.ship.W/2, p.ship.Y-p.ship.H/2, p.ship.W, p.ship.H, core.ColorGray)
		for _, inv := range p.invaders {
			r.StrokeRect(inv.X-inv.W/2, inv.Y-inv.H/2, inv.W, inv.H, core.ColorGray)
		}
	}
}
