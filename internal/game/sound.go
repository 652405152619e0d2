package game

// Sound effect names known to the simulation.
const (
	SoundShoot     = "shoot"
	SoundBang      = "bang"
	SoundExplosion = "explosion"
)

// SoundPlayer is the sound system consumed by the simulation. Load failures
// are the player's problem (logged, not surfaced): playing a sound that
// failed to load is a no-op, and no call may block the tick loop.
type SoundPlayer interface {
	Load(name string)
	Play(name string)
	SetMute(muted bool)
	Muted() bool
}

// NullSound is a SoundPlayer that discards everything. Used in tests and
// headless runs.
type NullSound struct {
	muted bool
}

func (n *NullSound) Load(string) {}

func (n *NullSound) Play(string) {}

func (n *NullSound) SetMute(muted bool) {
	n.muted = muted
}

func (n *NullSound) Muted() bool {
	return n.muted
}
