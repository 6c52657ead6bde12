// Package typewar implements the typing game: glyphs approach a central
// target from a spawn ring and the player destroys them by typing their text.
package typewar

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/typewar/internal/config"
	"github.com/vovakirdan/typewar/internal/core"
	"github.com/vovakirdan/typewar/internal/words"
)

// Visual characters for rendering
const (
	CoreChar = '░'
	RingChar = '·'
)

// Game wraps State with everything needed to drive it from timers and
// input: config, RNG, word source and the play-area size.
type Game struct {
	state      *State
	cfg        config.TypewarConfig
	runtime    core.RuntimeConfig
	wordList   []string
	rng        *rand.Rand
	source     words.Source
	difficulty *config.DifficultyManager

	width, height float64 // Play area in px
	tickCount     int
	typos         int // Commits that matched nothing
	paused        bool
}

// New creates a game. An empty wordList makes the game sample hanzi.
func New(cfg config.TypewarConfig, wordList []string) *Game {
	return &Game{
		cfg:      cfg,
		wordList: wordList,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "typewar"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Type War"
}

// Reset initializes or restarts the game and spawns the first batch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = g.cfg.Gameplay.TickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.source = words.New(g.wordList, g.rng)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.state = NewState(g.cfg.Gameplay.HitPoints)
	g.tickCount = 0
	g.typos = 0
	g.paused = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.SpawnTick()
}

// Resize updates the play area from a terminal size in cells.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	g.width = float64(cols * g.cfg.Render.CellWidth)
	g.height = float64(rows * g.cfg.Render.CellHeight)
}

// SpawnRadius returns the distance from the center at which targets appear.
func (g *Game) SpawnRadius() float64 {
	return g.width / 2
}

// TickOffset returns how far targets move on the next tick, in px.
func (g *Game) TickOffset() float64 {
	speed := g.difficulty.Speed(g.cfg.Gameplay.Speed, g.state.Score, g.tickCount)
	return speed / float64(g.runtime.TickRate)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step() core.StepResult {
	if g.paused || g.state.Over() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	before := g.state.Entities.Len()
	Advance(g.state, g.TickOffset(), g.cfg.Gameplay.InnerRadius)

	return core.StepResult{
		State:   g.State(),
		Reached: before - g.state.Entities.Len(),
		Ended:   g.state.Over(),
	}
}

// SpawnTick adds one batch of targets and returns how many were added.
func (g *Game) SpawnTick() int {
	if g.paused || g.state.Over() {
		return 0
	}
	before := g.state.Entities.Len()
	Spawn(g.state, g.source, g.rng, g.cfg.Gameplay.SpawnBatch, g.SpawnRadius())
	return g.state.Entities.Len() - before
}

// Commit resolves one committed input string against the targets.
func (g *Game) Commit(text string) bool {
	if g.paused || g.state.Over() || text == "" {
		return false
	}
	if Resolve(g.state, text) {
		return true
	}
	g.typos++
	return false
}

// TogglePause freezes or resumes all steps. Ignored after game over.
func (g *Game) TogglePause() {
	if g.state.Over() {
		return
	}
	g.paused = !g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HitPoints: core.Max(g.state.HitPoints, 0),
		GameOver:  g.state.Over(),
		Paused:    g.paused,
	}
}

// Missed returns how many targets reached the center.
func (g *Game) Missed() int {
	return g.cfg.Gameplay.HitPoints - g.state.HitPoints
}

// Accuracy returns hits over all commits, or 1 before any commit.
func (g *Game) Accuracy() float64 {
	total := g.state.Score + g.typos
	if total == 0 {
		return 1
	}
	return float64(g.state.Score) / float64(total)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawTarget(dst)

	for _, e := range g.state.Entities.All() {
		g.drawEntity(dst, e)
	}

	g.drawScore(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press Ctrl+P to resume", core.ColorCyan)
	}

	if g.state.Over() {
		g.drawGameOver(dst)
	}
}

// toCell maps a play-area position to a screen cell.
func (g *Game) toCell(dst *core.Screen, p core.Vec) (int, int) {
	cx, cy := dst.Width()/2, dst.Height()/2
	x := cx + int(math.Round(p.X/float64(g.cfg.Render.CellWidth)))
	y := cy + int(math.Round(p.Y/float64(g.cfg.Render.CellHeight)))
	return x, y
}

// drawTarget renders the filled inner circle and a ring at twice its radius.
func (g *Game) drawTarget(dst *core.Screen) {
	inner := g.cfg.Gameplay.InnerRadius
	if inner <= 0 {
		return
	}
	cw, ch := float64(g.cfg.Render.CellWidth), float64(g.cfg.Render.CellHeight)
	cx, cy := dst.Width()/2, dst.Height()/2
	halfCell := cw / 2

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			d := core.Vec{X: float64(x-cx) * cw, Y: float64(y-cy) * ch}.Len()
			switch {
			case d <= inner:
				dst.SetColored(x, y, CoreChar, core.ColorDarkRed)
			case math.Abs(d-2*inner) <= halfCell:
				dst.SetColored(x, y, RingChar, core.ColorDarkRed)
			}
		}
	}
}

// drawEntity centers the entity's text on its cell.
func (g *Game) drawEntity(dst *core.Screen, e Entity) {
	x, y := g.toCell(dst, e.Pos)
	x -= core.TextWidth(e.Text) / 2
	dst.DrawTextColored(x, y, e.Text, core.ColorBrightWhite)
}

func (g *Game) drawScore(dst *core.Screen) {
	score := fmt.Sprintf(" Score: %d ", g.state.Score)
	dst.DrawTextColored(1, 0, score, core.ColorYellow)

	hpColor := core.ColorGreen
	if g.state.HitPoints*4 <= g.cfg.Gameplay.HitPoints {
		hpColor = core.ColorRed
	}
	hp := fmt.Sprintf(" HP: %d ", core.Max(g.state.HitPoints, 0))
	dst.DrawTextColored(1+core.TextWidth(score), 0, hp, hpColor)

	acc := fmt.Sprintf(" Acc: %.0f%% ", g.Accuracy()*100)
	dst.DrawTextColored(dst.Width()-core.TextWidth(acc)-1, 0, acc, core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	summary := fmt.Sprintf("Score: %d  |  Missed: %d  |  Accuracy: %.0f%%",
		g.state.Score, g.Missed(), g.Accuracy()*100)
	drawCenteredMessage(dst, "GAME OVER", summary, core.ColorRed)
	dst.DrawTextCentered(dst.Height()/2+3, "Ctrl+R restart  |  Ctrl+C quit", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, border core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(core.TextWidth(title), core.TextWidth(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, border)

	dst.DrawTextColored(boxX+(boxW-core.TextWidth(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-core.TextWidth(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
