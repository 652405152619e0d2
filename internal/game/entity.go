package game

// Entity sizes in game units. Collision boxes match the drawn rectangles;
// rockets and bombs collide as points regardless of their drawn size.
const (
	ShipWidth     = 20.0
	ShipHeight    = 16.0
	InvaderWidth  = 18.0
	InvaderHeight = 14.0
	RocketWidth   = 2.0
	RocketHeight  = 4.0
	BombWidth     = 4.0
	BombHeight    = 4.0
)

// Entity is the shared shape of everything on the playfield: a positioned
// axis-aligned rectangle. (X, Y) is the center of the collision box.
// Entities are value-like and owned by the play state that created them;
// removal is by rebuilding the owning slice.
type Entity struct {
	X, Y float64
	W, H float64
}

// Ship is the player's ship.
type Ship struct {
	Entity
}

// Rocket is a player projectile moving up the playfield.
type Rocket struct {
	Entity
	Velocity float64 // Upward, game units per second
}

// Bomb is an invader projectile moving down the playfield.
type Bomb struct {
	Entity
	Velocity float64 // Downward, game units per second
}

// Invader is one member of the swarm, tagged with its formation grid
// coordinates. Rank counts down the screen (rank 0 is the back row,
// furthest from the ship); file counts across.
type Invader struct {
	Entity
	Rank, File int
}

// NewShip creates a ship centered at (x, y).
func NewShip(x, y float64) Ship {
	return Ship{Entity{X: x, Y: y, W: ShipWidth, H: ShipHeight}}
}

// NewRocket creates a rocket at (x, y) with the given upward velocity.
func NewRocket(x, y, velocity float64) Rocket {
	return Rocket{Entity: Entity{X: x, Y: y, W: RocketWidth, H: RocketHeight}, Velocity: velocity}
}

// NewBomb creates a bomb at (x, y) with the given downward velocity.
func NewBomb(x, y, velocity float64) Bomb {
	return Bomb{Entity: Entity{X: x, Y: y, W: BombWidth, H: BombHeight}, Velocity: velocity}
}

// NewInvader creates an invader centered at (x, y) at the given grid spot.
func NewInvader(x, y float64, rank, file int) Invader {
	return Invader{
		Entity: Entity{X: x, Y: y, W: InvaderWidth, H: InvaderHeight},
		Rank:   rank,
		File:   file,
	}
}
