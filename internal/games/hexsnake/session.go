package hexsnake

import (
	"math/rand"

	"github.com/vovakirdan/hexsnake/internal/hexgrid"
)

// Lifecycle is the session's coarse state.
type Lifecycle int

const (
	LifecycleNotStarted Lifecycle = iota
	LifecycleRunning
	LifecycleOver
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleNotStarted:
		return "not-started"
	case LifecycleRunning:
		return "running"
	case LifecycleOver:
		return "over"
	default:
		return "unknown"
	}
}

// EatEvent is the transient food-eaten record shown by the renderer
// until it expires. Tick is the platform tick at which it happened.
type EatEvent struct {
	Cell hexgrid.Cell
	Face int
	Tick uint64
}

// rules holds the fixed gameplay constants a session plays under.
type rules struct {
	foodPoints int
	flashTicks uint64
}

// session is the complete simulation state. Each move replaces it
// wholesale: advance is a pure transition from one value to the next,
// so observers can hold a copy without any locking discipline.
type session struct {
	topo  hexgrid.Topology
	rules rules

	snake   Snake
	heading hexgrid.Heading
	food    Food

	// currentFace only decides which face the renderer shows; the
	// simulation itself never reads it.
	currentFace int

	score     int
	lifecycle Lifecycle

	// wrapGrace is set to 1 on a wrap and decremented on the following
	// move. Nothing consults it; see DESIGN.md.
	wrapGrace int

	eaten *EatEvent
}

// tickEvents reports what happened during one advance, for the caller
// to log or surface. The session itself stays side-effect free.
type tickEvents struct {
	wrapped   bool
	ate       bool
	died      bool
	saturated bool
}

// newSession creates a running session: canonical three-segment snake
// on face A, heading along the first direction vector, fresh food.
func newSession(topo hexgrid.Topology, r rules, rng *rand.Rand) (session, bool) {
	snake := startingSnake()
	food, saturated := spawnFood(rng, topo.Board, snake, FaceAny)
	return session{
		topo:        topo,
		rules:       r,
		snake:       snake,
		heading:     hexgrid.HeadingRight,
		food:        food,
		currentFace: FaceA,
		lifecycle:   LifecycleRunning,
	}, saturated
}

// advance computes the next session state for one snake move. It is
// only called while the lifecycle is running; any other call is a
// caller contract violation and no-ops.
func (s session) advance(rng *rand.Rand, now uint64) (session, tickEvents) {
	var ev tickEvents
	if s.lifecycle != LifecycleRunning {
		return s, ev
	}

	head := s.snake.Head()
	step := s.topo.ClassifyStep(head.Cell, s.heading)

	var newHead Segment
	wrapped := false
	switch step.Kind {
	case hexgrid.StepBlocked:
		s.lifecycle = LifecycleOver
		ev.died = true
		return s, ev
	case hexgrid.StepNormal:
		newHead = Segment{Cell: step.Cell, Face: head.Face}
	case hexgrid.StepPortal:
		newHead = Segment{Cell: step.Cell, Face: otherFace(head.Face)}
		s.heading = s.topo.ReflectHeading(s.heading)
		wrapped = true
	}

	if s.snake.Occupies(newHead.Cell, newHead.Face) {
		s.lifecycle = LifecycleOver
		ev.died = true
		return s, ev
	}

	grown := s.snake.grown(newHead)

	if wrapped {
		ev.wrapped = true
		s.wrapGrace = 1
		s.currentFace = newHead.Face

		// Food tracks the board topology across a wrap: it mirrors
		// under the same transform and never disappears because of a
		// wrap alone. The raw reflection can fall off-board; then the
		// food respawns on the face the snake just entered.
		mirrored := s.topo.Axis.Reflect(s.food.Cell)
		if s.topo.Board.Contains(mirrored) {
			s.food = Food{Cell: mirrored, Face: newHead.Face}
		} else {
			food, saturated := spawnFood(rng, s.topo.Board, grown, newHead.Face)
			s.food = food
			ev.saturated = ev.saturated || saturated
		}
	} else if s.wrapGrace > 0 {
		s.wrapGrace--
	}

	if newHead.Cell == s.food.Cell && newHead.Face == s.food.Face {
		ev.ate = true
		s.score += s.rules.foodPoints
		s.snake = grown
		s.eaten = &EatEvent{Cell: newHead.Cell, Face: newHead.Face, Tick: now}
		food, saturated := spawnFood(rng, s.topo.Board, grown, FaceAny)
		s.food = food
		ev.saturated = ev.saturated || saturated
	} else {
		s.snake = s.snake.moved(newHead)
	}

	return s, ev
}

// expireEaten clears the food-eaten record once its display window has
// passed. Called by the platform layer each tick on the renderer's
// behalf.
func (s *session) expireEaten(now uint64) {
	if s.eaten != nil && now-s.eaten.Tick >= s.rules.flashTicks {
		s.eaten = nil
	}
}
