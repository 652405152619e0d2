// Package audio plays the game's sound effects through the system speaker.
// All effects are synthesized at load time; there are no asset files. When
// the speaker cannot be initialised the player degrades to silent mode so
// headless and audio-less environments still run.
package audio

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Player is a beep-backed sound system. The zero value is not usable; create
// one with NewPlayer.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	buffers map[string]*beep.Buffer
	muted   bool
	silent  bool
	started bool
	logger  *log.Logger
}

// NewPlayer creates a player and initialises the speaker. Speaker failures
// put the player in silent mode rather than erroring: the game must run on
// machines without audio.
func NewPlayer() *Player {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "audio",
	})

	p := &Player{
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
		logger:  logger,
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		logger.Warn("speaker unavailable, running silent", "error", err)
		p.silent = true
		return p
	}
	speaker.Play(p.mixer)
	p.started = true
	return p
}

// Load synthesizes the named effect into a reusable buffer. Unknown names
// are logged and ignored; Play on them is then a no-op.
func (p *Player) Load(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.silent {
		return
	}
	if _, ok := p.buffers[name]; ok {
		return
	}

	streamer, duration := effectStreamer(name)
	if streamer == nil {
		p.logger.Warn("unknown sound effect", "name", name)
		return
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sampleRate.N(duration), streamer))
	p.buffers[name] = buf
}

// Play queues the named effect for playback. Never blocks the caller beyond
// the speaker lock; unloaded or unknown names are silently dropped.
func (p *Player) Play(name string) {
	p.mu.Lock()
	buf, ok := p.buffers[name]
	muted, silent := p.muted, p.silent
	p.mu.Unlock()

	if silent || muted || !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// SetMute sets the mute state. Muted playback drops sounds without touching
// the mixer.
func (p *Player) SetMute(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports the current mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Silent reports whether the player is in silent mode (speaker unavailable).
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.silent
}

// Close stops playback and clears the mixer. The speaker itself stays
// initialised; beep does not expose a teardown.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}

// effectStreamer maps an effect name to its generator and length.
func effectStreamer(name string) (beep.Streamer, time.Duration) {
	switch name {
	case game.SoundShoot:
		return NewShootGenerator(sampleRate), 150 * time.Millisecond
	case game.SoundBang:
		return NewBangGenerator(sampleRate, 220), 200 * time.Millisecond
	case game.SoundExplosion:
		return NewExplosionGenerator(sampleRate), 500 * time.Millisecond
	default:
		return nil, 0
	}
}
