package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/game"
)

// holdWindow is how long a key counts as held after its last press event.
// Terminals deliver no key-release events, so a held key is inferred from
// auto-repeat: as long as repeats keep arriving within the window the key
// stays down, and silence releases it.
const holdWindow = 200 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game keys and emulates
// key-release events for the hold-sensitive keys.
type KeyMapper struct {
	lastSeen map[game.Key]time.Time
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{lastSeen: make(map[game.Key]time.Time)}
}

// MapKey translates a key message to a game key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k game.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return game.KeyNone, true
	case "left", "a", "h":
		return game.KeyLeft, false
	case "right", "d", "l":
		return game.KeyRight, false
	case " ", "up", "w":
		return game.KeyFire, false
	case "p", "esc":
		return game.KeyPause, false
	}
	return game.KeyNone, false
}

// Press records a press of a hold-sensitive key at the given time.
func (km *KeyMapper) Press(k game.Key, now time.Time) {
	km.lastSeen[k] = now
}

// Expired returns the keys whose hold window has lapsed and forgets them.
// The caller forwards these as key-up events.
func (km *KeyMapper) Expired(now time.Time) []game.Key {
	var released []game.Key
	for k, seen := range km.lastSeen {
		if now.Sub(seen) > holdWindow {
			released = append(released, k)
			delete(km.lastSeen, k)
		}
	}
	return released
}

// Held reports whether the key is inside its hold window.
func (km *KeyMapper) Held(k game.Key, now time.Time) bool {
	seen, ok := km.lastSeen[k]
	return ok && now.Sub(seen) <= holdWindow
}
