package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typewar/internal/core"
)

// Game is what the model drives. All methods are called from Update, so
// implementations need no locking.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cols, rows int)
	Step() core.StepResult
	SpawnTick() int
	Commit(text string) bool
	TogglePause()
	Render(dst *core.Screen)
	State() core.GameState
}

// Feedback receives gameplay cues, e.g. for sound.
type Feedback interface {
	Hit()
	Miss()
	GameOver()
}

type noFeedback struct{}

func (noFeedback) Hit()      {}
func (noFeedback) Miss()     {}
func (noFeedback) GameOver() {}

// Options configures a game session.
type Options struct {
	Runtime     core.RuntimeConfig
	SpawnPeriod time.Duration
	Mode        InputMode // InputAuto falls back to InputDirect
	Logger      *log.Logger
	Feedback    Feedback
}

// statusRows is the number of rows below the play area.
const statusRows = 1

// Model is the Bubble Tea model for a game session.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	period   time.Duration
	mode     InputMode
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	feedback Feedback

	gen       int // Timer generation; bumped on restart
	gameState core.GameState
	quitting  bool
}

// NewModel creates a model and resets the game for the given options.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Feedback == nil {
		opts.Feedback = noFeedback{}
	}
	if opts.Mode == InputAuto {
		opts.Mode = InputDirect
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a word"
	ti.CharLimit = 64
	ti.Focus()

	playH := core.Max(cfg.ScreenH-statusRows, 1)
	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playH),
		config:   cfg,
		period:   opts.SpawnPeriod,
		mode:     opts.Mode,
		input:    ti,
		keys:     DefaultKeyMap(opts.Mode),
		help:     help.New(),
		logger:   opts.Logger,
		feedback: opts.Feedback,
	}
	m.help.Width = cfg.ScreenW

	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  playH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})
	m.gameState = game.State()
	m.logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "mode", m.mode)
	return m
}

// Init names the terminal window and starts both timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.gen, m.config.TickRate),
		spawnCmd(m.gen, m.period),
		textinput.Blink,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case SpawnMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleSpawn()
	}

	if m.mode == InputLine {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()
		m.gameState = m.game.State()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	if m.mode == InputDirect {
		if text, ok := directCommit(msg); ok {
			m.commit(text)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Commit):
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if text != "" {
			m.commit(text)
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit hands one committed string to the game.
func (m *Model) commit(text string) {
	hit := m.game.Commit(text)
	m.gameState = m.game.State()
	m.logger.Debug("commit", "text", text, "hit", hit, "score", m.gameState.Score)
	if hit {
		m.feedback.Hit()
	}
}

// handleResize processes window resize events. The game keeps its state;
// only the play area and spawn ring change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	playH := core.Max(msg.Height-statusRows, 1)
	m.screen.Resize(msg.Width, playH)
	m.game.Resize(msg.Width, playH)
	m.help.Width = msg.Width
	m.input.Width = core.Clamp(msg.Width/3, 10, 40)
	return m, nil
}

// handleTick runs one simulation step. The timer is not re-armed once the
// game is over, which freezes the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step()
	m.gameState = result.State

	if result.Reached > 0 {
		m.logger.Info("targets reached center", "count", result.Reached, "hp", m.gameState.HitPoints)
		m.feedback.Miss()
	}
	if result.Ended {
		m.logger.Info("game over", "score", m.gameState.Score)
		m.feedback.GameOver()
		m.keys.Restart.SetEnabled(true)
		return m, nil
	}
	return m, tickCmd(m.gen, m.config.TickRate)
}

// handleSpawn adds a batch of targets and re-arms the spawn timer.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}
	if n := m.game.SpawnTick(); n > 0 {
		m.logger.Debug("spawned", "count", n)
	}
	return m, spawnCmd(m.gen, m.period)
}

// restart resets the game after game over and starts a new timer generation.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver {
		return m, nil
	}
	m.gen++
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.screen.Width(),
		ScreenH:  m.screen.Height(),
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	m.gameState = m.game.State()
	m.keys.Restart.SetEnabled(false)
	m.input.Reset()
	m.logger.Info("game restarted", "seed", m.config.Seed)
	return m, tea.Batch(tickCmd(m.gen, m.config.TickRate), spawnCmd(m.gen, m.period))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the play area and the status line. The full key help is
// shown while paused.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.help.ShowAll = m.gameState.Paused

	var status string
	if m.mode == InputLine {
		status = m.input.View() + "  "
	}
	status += statusStyle.Render(m.help.View(m.keys))

	return RenderScreen(m.screen) + "\n" + status
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
