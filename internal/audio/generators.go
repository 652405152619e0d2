package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ShootGenerator produces the player's fire sound: a short downward zap from
// 900Hz to 300Hz with a fast exponential fade.
type ShootGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewShootGenerator creates a shoot sound generator.
func NewShootGenerator(sr beep.SampleRate) *ShootGenerator {
	return &ShootGenerator{sr: sr}
}

func (g *ShootGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 900 - 600*math.Min(t/0.12, 1)
		envelope := math.Exp(-t * 25)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ShootGenerator) Err() error {
	return nil
}

// BangGenerator produces the invader-kill sound: a square-ish two-harmonic
// blip with a quick attack and release.
type BangGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBangGenerator creates a bang sound generator at the given pitch.
func NewBangGenerator(sr beep.SampleRate, freq float64) *BangGenerator {
	return &BangGenerator{sr: sr, freq: freq}
}

func (g *BangGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.12 * math.Sin(2*math.Pi*g.freq*2*t)

		attack := math.Min(t/0.01, 1)
		sample *= attack * math.Exp(-t*18)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BangGenerator) Err() error {
	return nil
}

// ExplosionGenerator produces the ship-hit sound: filtered noise over a low
// rumble with an exponential decay.
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewExplosionGenerator creates an explosion sound generator.
func NewExplosionGenerator(sr beep.SampleRate) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, seed: time.Now().UnixNano()}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}
