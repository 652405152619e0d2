package game

// Key identifies a logical input key. The platform layer maps physical
// terminal input onto these codes; the simulation never sees raw key events.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire  // space
	KeyPause // p
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyPause:
		return "pause"
	default:
		return "none"
	}
}
