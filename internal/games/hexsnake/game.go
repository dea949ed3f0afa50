package hexsnake

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexsnake/internal/config"
	"github.com/vovakirdan/hexsnake/internal/core"
	"github.com/vovakirdan/hexsnake/internal/hexgrid"
	"github.com/vovakirdan/hexsnake/internal/registry"
)

// configPath is set by the CLI layer before game creation; Reset
// reads it.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the hex snake game: a snake on a hexagonal board
// with two linked faces, joined by one randomly chosen pair of wrap
// portal edges per session. All simulation state lives in an immutable
// session value; Game adds input coalescing, move cadence, and the
// pause/restart shell around it.
type Game struct {
	cfg    config.HexSnakeConfig
	rng    *rand.Rand
	logger *log.Logger

	tick           uint64
	moveEveryTicks int
	moveTicker     int

	// pendingTurn coalesces rotation commands between moves:
	// last-write-wins, applied once at the next move.
	pendingTurn int

	sess     session
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// New creates a new hex snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("hexsnake", func() registry.Game {
		return New()
	})
}

// SetLogger injects a logger for anomaly reporting (board saturation).
// The simulation itself never logs.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "hexsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Hex Snake"
}

// Reset starts a fresh session: new RNG from the seed, a freshly
// chosen wrap axis, the canonical starting snake, and new food.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadHexSnake(configPath)
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("falling back to default config", "error", err)
		}
		gameCfg = config.DefaultHexSnakeConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moveEveryTicks = gameCfg.Timing.MoveEveryTicks
	g.moveTicker = 0
	g.pendingTurn = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	radius := gameCfg.Board.Radius
	board := hexgrid.NewBoard(radius)
	topo := hexgrid.NewTopology(board, hexgrid.RandomAxis(g.rng))

	// The rendered face spans 6R+1 columns and 2R+1 rows plus HUD.
	g.tooSmall = g.screenW < 6*radius+3 || g.screenH < 2*radius+hudHeight+2

	r := rules{
		foodPoints: gameCfg.Scoring.FoodPoints,
		flashTicks: uint64(gameCfg.Timing.FoodFlashTicks),
	}
	sess, saturated := newSession(topo, r, g.rng)
	g.sess = sess
	if saturated {
		g.logSaturation()
	}
}

// Step advances the game by one platform tick. The snake itself only
// moves every moveEveryTicks ticks; between moves, rotation commands
// coalesce last-write-wins into pendingTurn.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.sess.lifecycle == LifecycleOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.sess.lifecycle != LifecycleRunning || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case input.Has(core.ActionTurnLeft):
		g.pendingTurn = -1
	case input.Has(core.ActionTurnRight):
		g.pendingTurn = +1
	}

	g.sess.expireEaten(g.tick)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.move()
	}

	return core.StepResult{State: g.State()}
}

// move applies the pending rotation and runs one session transition.
func (g *Game) move() {
	if g.pendingTurn != 0 {
		g.sess.heading = g.sess.heading.Rotate(g.pendingTurn)
		g.pendingTurn = 0
	}

	next, ev := g.sess.advance(g.rng, g.tick)
	g.sess = next

	if ev.saturated {
		g.logSaturation()
	}
}

func (g *Game) logSaturation() {
	if g.logger != nil {
		g.logger.Warn("board saturated, food placed at degenerate fallback",
			"radius", g.cfg.Board.Radius,
			"snake_len", len(g.sess.snake),
		)
	}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.score,
		GameOver: g.sess.lifecycle == LifecycleOver,
		Paused:   g.paused,
	}
}
