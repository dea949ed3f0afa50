package hexgrid

import "math/rand"

// Axis identifies one of the three reflective symmetry classes over the
// board boundary. Each class owns an opposite pair of boundary edges
// that act as wrap portals while the axis is active.
type Axis int

const (
	// AxisHorizontal wraps across the q = ±R edges.
	AxisHorizontal Axis = iota
	// AxisDiagonal1 wraps across the r = ±R edges.
	AxisDiagonal1
	// AxisDiagonal2 wraps across the -q-r = ±R edges.
	AxisDiagonal2
)

// NumAxes is the number of wrap axis classes.
const NumAxes = 3

// RandomAxis picks one of the three axes uniformly from rng.
// The choice is made once per session and held fixed.
func RandomAxis(rng *rand.Rand) Axis {
	return Axis(rng.Intn(NumAxes))
}

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisDiagonal1:
		return "diagonal1"
	case AxisDiagonal2:
		return "diagonal2"
	default:
		return "unknown"
	}
}

// onEdge reports whether c lies on either boundary edge of the axis,
// for a board of the given radius.
func (a Axis) onEdge(radius int, c Cell) bool {
	switch a {
	case AxisHorizontal:
		return abs(c.Q) == radius
	case AxisDiagonal1:
		return abs(c.R) == radius
	case AxisDiagonal2:
		return abs(c.Q+c.R) == radius
	default:
		return false
	}
}

// Reflect applies the raw mirror transform of the axis to a cell.
// The result may be off-board; see Topology.Mirror for the nudged form.
func (a Axis) Reflect(c Cell) Cell {
	switch a {
	case AxisHorizontal:
		return Cell{Q: -c.Q, R: c.R}
	case AxisDiagonal1:
		return Cell{Q: c.Q, R: -c.R}
	case AxisDiagonal2:
		return Cell{Q: -c.R, R: -c.Q}
	default:
		return c
	}
}

// headingReflections holds the heading permutation applied when
// crossing each axis, before the 180-degree inversion that points the
// snake back into the interior.
var headingReflections = [NumAxes][NumHeadings]Heading{
	AxisHorizontal: {3, 2, 1, 0, 5, 4},
	AxisDiagonal1:  {0, 5, 4, 3, 2, 1},
	AxisDiagonal2:  {4, 3, 2, 1, 0, 5},
}

// Topology is a board plus the session's fixed wrap axis. It answers
// every boundary question the state machine needs: which cells are
// portals, where a step leads, and how headings reflect across a wrap.
type Topology struct {
	Board Board
	Axis  Axis
}

// NewTopology creates a topology for the board with the given axis.
func NewTopology(board Board, axis Axis) Topology {
	return Topology{Board: board, Axis: axis}
}

// IsPortalCell reports whether c lies on either portal edge of the
// active axis.
func (t Topology) IsPortalCell(c Cell) bool {
	return t.Axis.onEdge(t.Board.Radius, c)
}

// IsBoundaryCell reports whether c lies on any edge of any of the
// three axis classes. The simulation never needs this; it lets the
// renderer tell portal edges apart from plain walls.
func (t Topology) IsBoundaryCell(c Cell) bool {
	for a := Axis(0); a < NumAxes; a++ {
		if a.onEdge(t.Board.Radius, c) {
			return true
		}
	}
	return false
}

// Mirror maps a portal cell to its mirror-symmetric cell on the
// opposite face. If the raw reflection lands off-board (extreme corner
// cells), the result is nudged one step toward the origin along each
// nonzero axis so portals stay well-defined everywhere.
func (t Topology) Mirror(c Cell) Cell {
	m := t.Axis.Reflect(c)
	if !t.Board.Contains(m) {
		m.Q -= sign(m.Q)
		m.R -= sign(m.R)
	}
	return m
}

// ReflectHeading returns the heading the snake travels after crossing
// a portal: the axis-specific reflection followed by a 180-degree
// inversion, so the snake always re-enters heading into the interior.
func (t Topology) ReflectHeading(h Heading) Heading {
	return headingReflections[t.Axis][h].Invert()
}

// StepKind classifies the outcome of advancing one cell.
type StepKind int

const (
	// StepNormal means the next cell is on-board.
	StepNormal StepKind = iota
	// StepBlocked means the step leaves the board through a non-portal
	// edge. Fatal for the snake.
	StepBlocked
	// StepPortal means the step crosses a portal edge; Cell holds the
	// mirrored entry point on the opposite face.
	StepPortal
)

// Step is the result of ClassifyStep. Cell is the destination: the
// adjacent cell for StepNormal, the mirrored cell for StepPortal, and
// the (off-board) adjacent cell for StepBlocked.
type Step struct {
	Kind StepKind
	Cell Cell
}

// ClassifyStep determines what happens when the snake advances from c
// along h: a normal move, a portal crossing, or a fatal wall hit.
func (t Topology) ClassifyStep(c Cell, h Heading) Step {
	next := c.Add(h.Vector())
	if t.Board.Contains(next) {
		return Step{Kind: StepNormal, Cell: next}
	}
	if t.IsPortalCell(c) {
		return Step{Kind: StepPortal, Cell: t.Mirror(c)}
	}
	return Step{Kind: StepBlocked, Cell: next}
}
