package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// GameModel is the Bubble Tea model for one game of 2048.
//
// Moves are event driven: the UI renders no frames while the board is
// idle. A key press computes a move, starts the slide animation and a
// frame loop; when the settle wait elapses the engine settles (merge
// values, score, spawn) and the spawn pop runs. A key arriving while a
// move is still in flight is dropped by the engine, never queued.
type GameModel struct {
	engine *game.Engine
	screen *core.Screen
	store  *storage.Store
	cfg    config.Config

	keyMapper *KeyMapper
	anim      *animator

	best       int
	paused     bool
	gameOver   bool
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts a fresh game.
func NewGameModel(store *storage.Store, cfg config.Config, rt core.RuntimeConfig) GameModel {
	engine := game.New(game.Options{
		Seed:          rt.Seed,
		SpawnFourProb: cfg.Spawn.FourProb,
	})

	best := 0
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			best = high
		}
	}

	return GameModel{
		engine:    engine,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:     store,
		cfg:       cfg,
		keyMapper: NewKeyMapper(),
		anim:      &animator{},
		best:      best,
	}
}

// Init implements tea.Model. No tick loop starts until the first move.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameOver || m.paused {
			m.backToMenu = true
		}
		return m, nil

	case core.ActionPause:
		if !m.gameOver {
			m.paused = !m.paused
		}
		return m, nil

	case core.ActionRestart:
		return m.restart()

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return m.tryMove(action)
	}

	return m, nil
}

// restart begins a fresh game, discarding any in-flight animation.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.engine.Restart()
	m.anim.stop()
	m.paused = false
	m.gameOver = false
	m.scoreSaved = false
	return m, nil
}

// tryMove feeds a direction to the engine. A rejected move (in-flight
// or unknown direction) and a no-op move both change nothing.
func (m GameModel) tryMove(action core.Action) (tea.Model, tea.Cmd) {
	if m.paused || m.gameOver {
		return m, nil
	}

	dir, ok := actionDirection(action)
	if !ok {
		return m, nil
	}

	res, err := m.engine.Move(dir)
	if err != nil || !res.Changed {
		return m, nil
	}

	m.anim.startSlide(res.Effects, time.Now(), m.cfg.Animation.Slide())
	return m, frameCmd()
}

// handleFrame advances animations and fires the settle once its wait
// has elapsed.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	switch m.anim.phase {
	case PhaseSlide:
		m.anim.update(now)
		if m.anim.elapsed(now) < m.cfg.Animation.Settle() {
			return m, frameCmd()
		}
		return m.settle(now)

	case PhasePop:
		m.anim.update(now)
		if m.anim.done(now) {
			m.anim.stop()
			return m, nil
		}
		return m, frameCmd()
	}

	return m, nil
}

// settle completes the in-flight move: merge values and score land,
// a tile spawns and pops, and game over is detected.
func (m GameModel) settle(now time.Time) (tea.Model, tea.Cmd) {
	res := m.engine.Settle()

	if res.Score > m.best {
		m.best = res.Score
	}

	if res.Spawned != nil {
		m.anim.startPop(res.Spawned, now, m.cfg.Animation.Pop())
	} else {
		m.anim.stop()
	}

	if res.GameOver {
		m.gameOver = true
		m.saveResult()
	}

	if m.anim.phase != PhaseNone {
		return m, frameCmd()
	}
	return m, nil
}

// saveResult persists the finished game once, best effort.
func (m *GameModel) saveResult() {
	if m.scoreSaved || m.store == nil || m.engine.Score() == 0 {
		m.scoreSaved = true
		return
	}
	//nolint:errcheck // Best-effort save, game over screen shows regardless
	m.store.SaveResult(m.engine.Score(), m.engine.MaxTile())
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderGame(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// actionDirection maps an input action to a board direction.
func actionDirection(a core.Action) (game.Direction, bool) {
	switch a {
	case core.ActionUp:
		return game.DirUp, true
	case core.ActionDown:
		return game.DirDown, true
	case core.ActionLeft:
		return game.DirLeft, true
	case core.ActionRight:
		return game.DirRight, true
	}
	return 0, false
}

// Run starts a standalone (non-SSH) game session.
func Run(store *storage.Store, cfg config.Config, rt core.RuntimeConfig) error {
	model := NewGameModel(store, cfg, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
