package hexsnake

import "github.com/vovakirdan/hexsnake/internal/hexgrid"

// Snapshot captures the complete observable game state for determinism
// testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lifecycle   Lifecycle
	Axis        hexgrid.Axis
	SnakeLen    int
	HeadQ       int
	HeadR       int
	HeadFace    int
	Heading     hexgrid.Heading
	FoodQ       int
	FoodR       int
	FoodFace    int
	CurrentFace int
	WrapGrace   int
	Paused      bool
}

// Snapshot returns the current game snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	head := g.sess.snake.Head()
	return Snapshot{
		Tick:        g.tick,
		Score:       g.sess.score,
		Lifecycle:   g.sess.lifecycle,
		Axis:        g.sess.topo.Axis,
		SnakeLen:    len(g.sess.snake),
		HeadQ:       head.Cell.Q,
		HeadR:       head.Cell.R,
		HeadFace:    head.Face,
		Heading:     g.sess.heading,
		FoodQ:       g.sess.food.Cell.Q,
		FoodR:       g.sess.food.Cell.R,
		FoodFace:    g.sess.food.Face,
		CurrentFace: g.sess.currentFace,
		WrapGrace:   g.sess.wrapGrace,
		Paused:      g.paused,
	}
}
