package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Model is the Bubble Tea model hosting the game loop: it owns the tick
// timer, maps terminal input to game keys and persists finished runs.
type Model struct {
	eng        *game.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	keys       *KeyMapper
	player     string
	tickRate   int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for an initialised game. screenW/screenH are the
// terminal dimensions in cells; the logical canvas is taken from the game.
func NewModel(eng *game.Game, store *storage.Store, player string, screenW, screenH int) Model {
	screen := core.NewScreen(screenW, screenH)
	canvasW, canvasH := eng.Size()

	return Model{
		eng:      eng,
		screen:   screen,
		renderer: NewScreenRenderer(screen, canvasW, canvasH),
		store:    store,
		keys:     NewKeyMapper(),
		player:   player,
		tickRate: eng.Config().TickRate,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.eng.Start()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "m" {
		m.eng.ToggleMute()
		return m, nil
	}

	k, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.eng.Stop()
		return m, tea.Quit
	}

	switch k {
	case game.KeyNone:
	case game.KeyPause:
		// Pause is discrete; no hold emulation
		m.eng.KeyDown(k)
		m.eng.KeyUp(k)
	default:
		if !m.keys.Held(k, time.Now()) {
			m.eng.KeyDown(k)
		}
		m.keys.Press(k, time.Now())
	}

	return m, nil
}

// handleTick runs one simulation tick and persists the score on game over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, k := range m.keys.Expired(time.Now()) {
		m.eng.KeyUp(k)
	}

	m.eng.Tick(m.renderer)

	if m.eng.StateName() == "gameover" {
		if !m.scoreSaved {
			session := m.eng.Session()
			if m.store != nil && session.Score > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.player, session.Score, session.Level)
			}
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program hosting the game.
func Run(eng *game.Game, store *storage.Store, player string, screenW, screenH int) error {
	model := NewModel(eng, store, player, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
