package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maxvk/flapmax/internal/config"
	"github.com/maxvk/flapmax/internal/core"
	"github.com/maxvk/flapmax/internal/game"
	"github.com/maxvk/flapmax/internal/scoreboard"
)

// Model is the Bubble Tea model for a flapmax session: the game loop
// plus name entry when a run earns a place on the board.
type Model struct {
	g       *game.Game
	screen  *core.Screen
	board   *scoreboard.Board
	gameCfg config.GameConfig
	runtime core.RuntimeConfig

	inputFrame core.InputFrame
	gameState  game.State
	keyMapper  *KeyMapper

	nameInput    textinput.Model
	enteringName bool
	submitted    bool // Whether the current run was recorded

	username string
	paused   bool
	quitting bool
}

// NewModel creates a session model. The board may be nil, in which case
// scores are not recorded.
func NewModel(gameCfg config.GameConfig, rc core.RuntimeConfig, board *scoreboard.Board, username string) (Model, error) {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	g, err := game.New(gameCfg, rc)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = scoreboard.DefaultName
	ti.CharLimit = scoreboard.MaxNameLen
	ti.SetValue(username)

	return Model{
		g:          g,
		screen:     core.NewScreen(rc.ScreenW, rc.ScreenH),
		board:      board,
		gameCfg:    gameCfg,
		runtime:    rc,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		nameInput:  ti,
		username:   username,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m.handleNameKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionFlap:
		m.inputFrame.Set(core.ActionFlap)
	}

	return m, nil
}

// handleNameKey processes input while the player types a name for the
// board. Enter submits, Esc submits without a name.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.submitScore(m.nameInput.Value())
		m.enteringName = false
		return m, nil
	case "esc":
		m.submitScore("")
		m.enteringName = false
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize processes window resize events. The session restarts at
// the new dimensions; gap placement depends on world height, so the
// running simulation cannot simply be stretched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		if g, err := game.New(m.gameCfg, m.runtime); err == nil {
			m.g = g
			m.gameState = g.State()
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.runtime.Seed = time.Now().UnixNano()
		m.g.Reset(m.runtime.Seed)
		m.gameState = m.g.State()
		m.submitted = false
		m.enteringName = false
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if m.paused || m.enteringName {
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	result := m.g.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.submitted && !m.enteringName {
		m.handleGameOver()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// handleGameOver records the finished run. A qualifying score opens the
// name prompt; anything else is saved right away.
func (m *Model) handleGameOver() {
	if m.board == nil || m.gameState.MainScore <= 0 {
		m.submitted = true
		return
	}

	qualifies, err := m.board.IsQualifying(m.gameState.MainScore)
	if err != nil || !qualifies {
		m.submitScore(m.username)
		return
	}

	m.nameInput.SetValue(m.username)
	m.nameInput.Focus()
	m.enteringName = true
}

// submitScore records the run on the board, best effort.
func (m *Model) submitScore(name string) {
	m.submitted = true
	if m.board == nil {
		return
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.board.Submit(scoreboard.Entry{
		Name:        name,
		MainScore:   m.gameState.MainScore,
		CoinScore:   m.gameState.CoinScore,
		BurgerScore: m.gameState.BurgerScore,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.g.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".flapmax", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flapmax_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.g.Render(m.screen)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
	}
	if m.enteringName {
		m.drawNamePrompt()
	}

	return RenderScreen(m.screen)
}

// drawNamePrompt overlays the high-score name entry box.
func (m Model) drawNamePrompt() {
	w, h := m.screen.Width(), m.screen.Height()
	boxW, boxH := 34, 5
	if boxW > w {
		boxW = w
	}
	box := core.NewRect((w-boxW)/2, h/2-boxH/2, boxW, boxH)

	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, "NEW HIGH SCORE!")
	m.screen.DrawTextCentered(box.Y+2, m.nameInput.Value()+"_")
	m.screen.DrawTextCentered(box.Y+3, "[enter] save  [esc] skip")
}

// Run starts the Bubble Tea program for a local session.
func Run(gameCfg config.GameConfig, rc core.RuntimeConfig, board *scoreboard.Board, username string) error {
	model, err := NewModel(gameCfg, rc, board, username)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
